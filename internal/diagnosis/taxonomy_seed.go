package diagnosis

// seedSlips defines the slip taxonomy shown on summaries and history.
var seedSlips = []SlipInfo{
	{
		Slip:        SlipSpeedRush,
		Label:       "Rushing",
		Description: "Answered in under two seconds and got it wrong",
	},
	{
		Slip:        SlipPartsSum,
		Label:       "Parts don't add up",
		Description: "The two parts of the split do not rebuild the number being split",
		Stage:       StageSplit,
	},
	{
		Slip:        SlipTenBoundary,
		Label:       "Missed the ten",
		Description: "The split rebuilds the number but the first jump does not land on a ten",
		Stage:       StageSplit,
	},
	{
		Slip:        SlipOffByOne,
		Label:       "Off by one",
		Description: "Final answer one away from correct, usually a counting slip",
		Stage:       StageAnswer,
	},
	{
		Slip:        SlipOffByTen,
		Label:       "Off by ten",
		Description: "Final answer a full ten away from correct, a decade miscount",
		Stage:       StageAnswer,
	},
	{
		Slip:        SlipTransposed,
		Label:       "Swapped digits",
		Description: "Final answer has the correct digits in reverse order, e.g. 72 for 27",
		Stage:       StageAnswer,
	},
	{
		Slip:        SlipWrongOp,
		Label:       "Wrong sign",
		Description: "Final answer solves the opposite operation",
		Stage:       StageAnswer,
	},
	{
		Slip:        SlipCareless,
		Label:       "Careless slip",
		Description: "A miss from a learner who almost always gets this level right",
	},
	{
		Slip:        SlipUnclassified,
		Label:       "Still learning",
		Description: "No recognizable slip pattern",
	},
}

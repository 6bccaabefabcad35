package diagnosis

// SlipInfo describes a slip pattern for display on summaries and the
// history screen.
type SlipInfo struct {
	Slip        Slip
	Label       string
	Description string
	Stage       Stage // which stage the slip occurs in ("" if both)
}

// registry is the package-level slip registry, keyed by slip.
var registry map[Slip]*SlipInfo

// byStage indexes slips by the stage they occur in.
var byStage map[Stage][]*SlipInfo

func init() {
	registry = make(map[Slip]*SlipInfo, len(seedSlips))
	byStage = make(map[Stage][]*SlipInfo)
	for i := range seedSlips {
		info := &seedSlips[i]
		registry[info.Slip] = info
		if info.Stage != "" {
			byStage[info.Stage] = append(byStage[info.Stage], info)
		} else {
			byStage[StageSplit] = append(byStage[StageSplit], info)
			byStage[StageAnswer] = append(byStage[StageAnswer], info)
		}
	}
}

// GetSlipInfo returns the display info for a slip, or nil if unknown.
func GetSlipInfo(s Slip) *SlipInfo {
	return registry[s]
}

// SlipsByStage returns the slips that can occur in a stage.
func SlipsByStage(stage Stage) []*SlipInfo {
	return byStage[stage]
}

// Label returns the short display label for a slip, falling back to the
// raw slip value for unregistered ones.
func (s Slip) Label() string {
	if info := registry[s]; info != nil {
		return info.Label
	}
	return string(s)
}

package coaching

// LoadTrend compares the last two weeks of training stress against the
// two weeks before them. With no prior load any recent activity reads
// as growth; with fewer than 3 summaries there is nothing to compare.
func (c Config) LoadTrend(weeks []WeeklySummary) Trend {
	if len(weeks) < 3 {
		return TrendMaintaining
	}

	recent := (weeks[0].TotalTSS + weeks[1].TotalTSS) / 2

	priorTss := weeks[2].TotalTSS
	var week3Tss float64
	if len(weeks) > 3 {
		week3Tss = weeks[3].TotalTSS
	}
	prior := (priorTss + week3Tss) / 2

	if prior == 0 {
		return TrendBuilding
	}

	change := (recent - prior) / prior
	switch {
	case change > c.LoadBuildingMin:
		return TrendBuilding
	case change < c.LoadDecliningMax:
		return TrendDeclining
	case change < c.LoadRecoveringMax:
		return TrendRecovering
	default:
		return TrendMaintaining
	}
}

// PowerTrend compares mean weekly power of weeks 0-1 against weeks 2-3,
// skipping weeks with no power data. Either side empty means there is
// not enough signal to call it anything but stable.
func (c Config) PowerTrend(weeks []WeeklySummary) Trend {
	recent, recentOk := avgWeeklyPower(weeks, 0, 1)
	prior, priorOk := avgWeeklyPower(weeks, 2, 3)
	if !recentOk || !priorOk || prior == 0 {
		return TrendStable
	}

	change := (recent - prior) / prior
	switch {
	case change > c.PowerTrendDelta:
		return TrendImproving
	case change < -c.PowerTrendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func avgWeeklyPower(weeks []WeeklySummary, fromOffset, toOffset int) (float64, bool) {
	var sum float64
	var count int
	for offset := fromOffset; offset <= toOffset && offset < len(weeks); offset++ {
		if weeks[offset].AvgNormalizedPower == nil {
			continue
		}
		sum += float64(*weeks[offset].AvgNormalizedPower)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

package schedule

import "slices"

// AssignLanes places temporally overlapping jobs into separate visual
// lanes and returns the number of lanes used (for row-height sizing).
//
// Jobs are taken in start order and dropped into the first lane where
// they collide with nothing; a new lane opens only when none fits.
// This mutates each job's Lane field in place; the jobs are a
// view-model, not shared state.
func AssignLanes(jobs []ProjectedJob) int {
	if len(jobs) == 0 {
		return 0
	}

	order := make([]*ProjectedJob, len(jobs))
	for i := range jobs {
		order[i] = &jobs[i]
	}
	slices.SortStableFunc(order, func(a, b *ProjectedJob) int {
		return a.Start.Compare(b.Start)
	})

	var lanes [][]*ProjectedJob
	for _, job := range order {
		placed := false
		for laneIdx, lane := range lanes {
			if laneFits(lane, job) {
				job.Lane = laneIdx
				lanes[laneIdx] = append(lane, job)
				placed = true
				break
			}
		}
		if !placed {
			job.Lane = len(lanes)
			lanes = append(lanes, []*ProjectedJob{job})
		}
	}

	return len(lanes)
}

// laneFits reports whether job's [start, end) interval avoids every
// member of the lane.
func laneFits(lane []*ProjectedJob, job *ProjectedJob) bool {
	for _, existing := range lane {
		disjoint := !job.Start.Before(existing.End) || !job.End.After(existing.Start)
		if !disjoint {
			return false
		}
	}
	return true
}

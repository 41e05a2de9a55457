package service

import (
	"sort"

	"github.com/akhmedov/repsync/models"
)

// BuildSnapshot projects the session's current sets for one exercise into the
// durable wire shape stored by the pending-write queue. Records are ordered
// by set number ascending. Returns false when the exercise id is unknown.
// Pure: the session is not modified.
func BuildSnapshot(session models.Session, exerciseID string, ownerID int64) (models.PendingWrite, bool) {
	ex, ok := session.ExerciseByID(exerciseID)
	if !ok {
		return models.PendingWrite{}, false
	}

	sets := session.SetsForExercise(exerciseID)
	records := make([]models.SetRecord, 0, len(sets))
	for _, st := range sets {
		records = append(records, models.SetRecord{
			ID:        st.RemoteID,
			Weight:    st.Weight,
			Reps:      st.Reps,
			Done:      st.Done,
			SetNumber: st.SetNumber,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].SetNumber < records[j].SetNumber })

	return models.PendingWrite{
		OwnerID:      ownerID,
		Date:         session.Date,
		ExerciseName: ex.Name,
		Records:      records,
	}, true
}

package planrun

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// Recorder writes [Run] documents to a MongoDB collection.
type Recorder struct {
	coll *mongo.Collection
}

// NewRecorder constructs a Recorder backed by coll.
func NewRecorder(coll *mongo.Collection) *Recorder {
	return &Recorder{coll: coll}
}

// Start inserts a new Run document with a fresh ID and returns it.
func (r *Recorder) Start(ctx context.Context, decompositionSignature string, startCount int) (*Run, error) {
	run := &Run{
		ID:                     uuid.NewString(),
		DecompositionSignature: decompositionSignature,
		StartCount:             startCount,
		StartedAt:              time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, run); err != nil {
		return nil, syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "insert run %s", run.ID)
	}
	return run, nil
}

// RecordLead appends lead to runID's lead history, stamped with the
// current time.
func (r *Recorder) RecordLead(ctx context.Context, runID string, lead syclop.Lead) error {
	record := leadRecordOf(lead, time.Now())
	_, err := r.coll.UpdateByID(ctx, runID, bson.M{
		"$push": bson.M{"leads": record},
	})
	if err != nil {
		return syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "record lead for run %s", runID)
	}
	return nil
}

// Finish records the terminal outcome of a run.
func (r *Recorder) Finish(ctx context.Context, runID string, sol *syclop.Solution, numMotions int) error {
	update := bson.M{
		"solved":      sol != nil,
		"num_motions": numMotions,
		"finished_at": time.Now(),
	}
	if sol != nil {
		update["exact"] = sol.Exact
		update["goal_distance"] = sol.GoalDistance
	}
	_, err := r.coll.UpdateByID(ctx, runID, bson.M{"$set": update})
	if err != nil {
		return syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "finish run %s", runID)
	}
	return nil
}

// Get fetches a run by ID.
func (r *Recorder) Get(ctx context.Context, runID string) (*Run, error) {
	var run Run
	err := r.coll.FindOne(ctx, bson.M{"_id": runID}).Decode(&run)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "fetch run %s", runID)
	}
	return &run, nil
}

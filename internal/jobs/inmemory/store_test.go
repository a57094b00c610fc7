package inmemory

import (
	"context"
	"testing"

	"github.com/dmarkovic/racun-sync/internal/jobs"
	"github.com/dmarkovic/racun-sync/internal/reconcile"
)

func TestStore_SaveAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	job := &jobs.SyncPassJob{
		JobID:  "job-1",
		Kind:   reconcile.KindReceipt,
		Status: jobs.JobStatusPending,
	}
	if err := s.SaveJob(ctx, job); err != nil {
		t.Fatalf("SaveJob failed: %v", err)
	}

	got, err := s.GetJob(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got.Kind != reconcile.KindReceipt || got.Status != jobs.JobStatusPending {
		t.Errorf("GetJob = %+v, want saved job back", got)
	}

	// Stored copy must be insulated from later mutation of the original.
	job.Status = jobs.JobStatusFailed
	got, _ = s.GetJob(ctx, "job-1")
	if got.Status != jobs.JobStatusPending {
		t.Errorf("stored job status = %q, want isolated copy", got.Status)
	}
}

func TestStore_SaveRequiresID(t *testing.T) {
	s := NewStore()
	if err := s.SaveJob(context.Background(), &jobs.SyncPassJob{}); err == nil {
		t.Error("expected error for job without ID")
	}
}

func TestStore_ListJobsFilters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seed := []*jobs.SyncPassJob{
		{JobID: "a", Kind: reconcile.KindReceipt, Status: jobs.JobStatusCompleted},
		{JobID: "b", Kind: reconcile.KindReceipt, Status: jobs.JobStatusFailed},
		{JobID: "c", Kind: reconcile.KindBill, Status: jobs.JobStatusCompleted},
	}
	for _, j := range seed {
		if err := s.SaveJob(ctx, j); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListJobs(ctx, jobs.JobFilter{Kind: reconcile.KindReceipt})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("kind filter returned %d jobs, want 2", len(got))
	}

	got, err = s.ListJobs(ctx, jobs.JobFilter{Status: jobs.JobStatusCompleted})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("status filter returned %d jobs, want 2", len(got))
	}

	got, err = s.ListJobs(ctx, jobs.JobFilter{Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("limit filter returned %d jobs, want 1", len(got))
	}
}

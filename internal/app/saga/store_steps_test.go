package saga_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

func tabID(t *catalog.CollectionTab) string { return t.ID }

// faultyStore fails Delete for deleteID and, when createErr is set, every
// Create.
type faultyStore[T any] struct {
	ports.EntityStore[T]
	deleteID  string
	deleteErr error
	createErr error
}

func (s *faultyStore[T]) Delete(ctx context.Context, id string) error {
	if id == s.deleteID {
		return s.deleteErr
	}
	return s.EntityStore.Delete(ctx, id)
}

func (s *faultyStore[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.EntityStore.Create(ctx, rec)
}

func reconExecutor() (*saga.Executor, *memory.ReconciliationLog) {
	log := memory.NewReconciliationLog()
	return saga.NewExecutor(discardLogger(), saga.WithReconciliationLog(log)), log
}

// requireReconciliation checks that err reports a failed compensation of
// step and that exactly one entry reached the log.
func requireReconciliation(t *testing.T, err error, log *memory.ReconciliationLog, step string) {
	t.Helper()
	if !errors.Is(err, saga.ErrNeedsReconciliation) {
		t.Fatalf("Run() error = %v, want ErrNeedsReconciliation", err)
	}
	se, ok := saga.AsError(err)
	if !ok {
		t.Fatalf("Run() error is not *saga.Error: %T", err)
	}
	if se.Report.FullyCompensated() {
		t.Error("Report.FullyCompensated() = true, want false")
	}
	if len(se.Report.Failures) != 1 || se.Report.Failures[0].Step != step {
		t.Errorf("Report.Failures = %+v, want one failure in %q", se.Report.Failures, step)
	}
	entries, lerr := log.List(context.Background(), false)
	if lerr != nil {
		t.Fatalf("List() error = %v", lerr)
	}
	if len(entries) != 1 || entries[0].FailedStep != se.Step {
		t.Errorf("reconciliation entries = %+v, want one for step %q", entries, se.Step)
	}
}

func failStep(err error) saga.Step[string] {
	return saga.Func[string]("fail", func(context.Context, string) error { return err }, nil)
}

func TestCreateRecord_CompensationDeletes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()
	boom := errors.New("boom")

	op := saga.New[string, struct{}]("create tab",
		saga.CreateRecord[catalog.CollectionTab]("create", store, func(title string) *catalog.CollectionTab {
			return &catalog.CollectionTab{Base: catalog.Base{ID: "tab-1"}, CollectionID: "c1", Title: title}
		}, tabID),
		failStep(boom),
	)

	if _, err := op.Run(ctx, saga.NewExecutor(discardLogger()), "Shoes"); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if _, err := store.Retrieve(ctx, "tab-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Retrieve() after rollback error = %v, want ErrNotFound", err)
	}
}

func TestUpdateRecord_CompensationRestoresPrior(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()

	if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: "tab-1"}, CollectionID: "c1", Title: "Old", SortKey: 3}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	op := saga.New[string, struct{}]("rename tab",
		saga.UpdateRecord[catalog.CollectionTab]("update", store, func(title string) *catalog.CollectionTab {
			return &catalog.CollectionTab{Base: catalog.Base{ID: "tab-1"}, CollectionID: "c1", Title: title, SortKey: 9}
		}, tabID),
		failStep(errors.New("boom")),
	)

	if _, err := op.Run(ctx, saga.NewExecutor(discardLogger()), "New"); err == nil {
		t.Fatal("Run() error = nil, want failure")
	}

	got, err := store.Retrieve(ctx, "tab-1")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if got.Title != "Old" || got.SortKey != 3 {
		t.Errorf("after rollback = %+v, want Title=Old SortKey=3", got)
	}
}

func TestUpdateRecord_NotFoundHasNoSideEffect(t *testing.T) {
	t.Parallel()
	store := memory.NewStore[catalog.CollectionTab]()

	op := saga.New[string, *catalog.CollectionTab]("rename tab",
		saga.UpdateRecord[catalog.CollectionTab]("update", store, func(title string) *catalog.CollectionTab {
			return &catalog.CollectionTab{Base: catalog.Base{ID: "missing"}, Title: title}
		}, tabID),
	)

	_, err := op.Run(context.Background(), saga.NewExecutor(discardLogger()), "x")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Run() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteRecord_CompensationRecreatesWithSameID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()

	original, err := store.Create(ctx, &catalog.CollectionTab{CollectionID: "c1", Title: "Keep", SortKey: 1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	op := saga.New[string, struct{}]("delete tab",
		saga.DeleteRecord[catalog.CollectionTab]("delete", store, func(id string) string { return id }),
		failStep(errors.New("boom")),
	)

	if _, err := op.Run(ctx, saga.NewExecutor(discardLogger()), original.ID); err == nil {
		t.Fatal("Run() error = nil, want failure")
	}

	got, err := store.Retrieve(ctx, original.ID)
	if err != nil {
		t.Fatalf("Retrieve() after rollback error = %v", err)
	}
	if *got != *original {
		t.Errorf("after rollback = %+v, want %+v", got, original)
	}
}

func TestDeleteRecords_PartialFailureRestoresBatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := memory.NewStore[catalog.CollectionTab]()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := mem.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: id}, CollectionID: "c1", Title: id}); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	deleteErr := errors.New("disk full")
	store := &faultyStore[catalog.CollectionTab]{EntityStore: mem, deleteID: "c", deleteErr: deleteErr}

	op := saga.New[string, []catalog.CollectionTab]("delete tabs",
		saga.DeleteRecords[catalog.CollectionTab]("delete", store, func(owner string) string { return owner }, tabID),
	)

	_, err := op.Run(ctx, saga.NewExecutor(discardLogger()), "c1")
	if !errors.Is(err, deleteErr) {
		t.Fatalf("Run() error = %v, want %v", err, deleteErr)
	}
	if errors.Is(err, saga.ErrNeedsReconciliation) {
		t.Error("Run() error matches ErrNeedsReconciliation, want full rollback")
	}
	if se, _ := saga.AsError(err); se == nil || !slices.Equal(se.Report.Compensated, []string{"delete"}) {
		t.Errorf("Run() report = %+v, want the failing step compensated", se)
	}

	remaining, err := mem.List(ctx, ports.ListFilter{OwnerID: "c1"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(remaining) != 3 {
		t.Errorf("List() len = %d, want 3", len(remaining))
	}
}

func TestDeleteRecords_CompensationRecreatesAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()

	for _, id := range []string{"a", "b"} {
		if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: id}, CollectionID: "c1", Title: id}); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}
	if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: "other"}, CollectionID: "c2", Title: "o"}); err != nil {
		t.Fatalf("Create(other) error = %v", err)
	}

	op := saga.New[string, struct{}]("delete tabs",
		saga.DeleteRecords[catalog.CollectionTab]("delete", store, func(owner string) string { return owner }, tabID),
		failStep(errors.New("boom")),
	)

	if _, err := op.Run(ctx, saga.NewExecutor(discardLogger()), "c1"); err == nil {
		t.Fatal("Run() error = nil, want failure")
	}

	all, err := store.List(ctx, ports.ListFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List() len = %d, want 3", len(all))
	}
}

func TestCreateRecords_PartialFailureCleansUp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()

	if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: "taken"}, CollectionID: "c0", Title: "x"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	op := saga.New[string, []catalog.CollectionTab]("create tabs",
		saga.CreateRecords("create", store, func(owner string) []catalog.CollectionTab {
			return []catalog.CollectionTab{
				{Base: catalog.Base{ID: "t1"}, CollectionID: owner, Title: "a"},
				{Base: catalog.Base{ID: "taken"}, CollectionID: owner, Title: "b"},
			}
		}, tabID),
	)

	if _, err := op.Run(ctx, saga.NewExecutor(discardLogger()), "c1"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Run() error = %v, want ErrConflict", err)
	}
	if _, err := store.Retrieve(ctx, "t1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Retrieve(t1) error = %v, want ErrNotFound", err)
	}
	if got, _ := store.Retrieve(ctx, "taken"); got == nil || got.CollectionID != "c0" {
		t.Errorf("pre-existing record changed: %+v", got)
	}
}

func TestDeleteSelected_CompensationRecreates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: id}, CollectionID: "c1", Title: id}); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	op := saga.New[[]string, struct{}]("delete some",
		saga.DeleteSelected[catalog.CollectionTab]("delete", store, func(ids []string) []string { return ids }, tabID),
		failIDsStep(errors.New("boom")),
	)

	if _, err := op.Run(ctx, saga.NewExecutor(discardLogger()), []string{"a", "c"}); err == nil {
		t.Fatal("Run() error = nil, want failure")
	}

	all, _ := store.List(ctx, ports.ListFilter{OwnerID: "c1"})
	if len(all) != 3 {
		t.Errorf("List() len = %d, want 3", len(all))
	}
}

func failIDsStep(err error) saga.Step[[]string] {
	return saga.Func[[]string]("fail", func(context.Context, []string) error { return err }, nil)
}

func TestDeleteRecords_FailedRestoreNeedsReconciliation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := memory.NewStore[catalog.CollectionTab]()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := mem.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: id}, CollectionID: "c1", Title: id}); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	deleteErr := errors.New("disk full")
	store := &faultyStore[catalog.CollectionTab]{
		EntityStore: mem, deleteID: "c", deleteErr: deleteErr, createErr: errors.New("read-only"),
	}
	exec, log := reconExecutor()

	_, err := saga.New[string, []catalog.CollectionTab]("delete tabs",
		saga.DeleteRecords[catalog.CollectionTab]("delete", store, func(owner string) string { return owner }, tabID),
	).Run(ctx, exec, "c1")

	if !errors.Is(err, deleteErr) {
		t.Fatalf("Run() error = %v, want %v", err, deleteErr)
	}
	requireReconciliation(t, err, log, "delete")

	remaining, _ := mem.List(ctx, ports.ListFilter{OwnerID: "c1"})
	if len(remaining) != 1 {
		t.Errorf("List() len = %d, want 1", len(remaining))
	}
}

func TestCreateRecords_FailedCleanupNeedsReconciliation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := memory.NewStore[catalog.CollectionTab]()

	if _, err := mem.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: "taken"}, CollectionID: "c0", Title: "x"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	store := &faultyStore[catalog.CollectionTab]{EntityStore: mem, deleteID: "t1", deleteErr: errors.New("locked")}
	exec, log := reconExecutor()

	_, err := saga.New[string, []catalog.CollectionTab]("create tabs",
		saga.CreateRecords[catalog.CollectionTab]("create", store, func(owner string) []catalog.CollectionTab {
			return []catalog.CollectionTab{
				{Base: catalog.Base{ID: "t1"}, CollectionID: owner, Title: "a"},
				{Base: catalog.Base{ID: "taken"}, CollectionID: owner, Title: "b"},
			}
		}, tabID),
	).Run(ctx, exec, "c1")

	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Run() error = %v, want ErrConflict", err)
	}
	requireReconciliation(t, err, log, "create")

	if _, err := mem.Retrieve(ctx, "t1"); err != nil {
		t.Errorf("Retrieve(t1) error = %v, want the orphan to remain", err)
	}
}

func TestDeleteSelected_PartialFailureRestores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()

	if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: "a"}, CollectionID: "c1", Title: "a"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := saga.New[[]string, struct{}]("delete some",
		saga.DeleteSelected[catalog.CollectionTab]("delete", store, func(ids []string) []string { return ids }, tabID),
	).Run(ctx, saga.NewExecutor(discardLogger()), []string{"a", "missing"})

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Run() error = %v, want ErrNotFound", err)
	}
	if errors.Is(err, saga.ErrNeedsReconciliation) {
		t.Error("Run() error matches ErrNeedsReconciliation, want full rollback")
	}
	if _, err := store.Retrieve(ctx, "a"); err != nil {
		t.Errorf("Retrieve(a) after rollback error = %v", err)
	}
}

func TestDeleteSelected_FailedRestoreNeedsReconciliation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := memory.NewStore[catalog.CollectionTab]()

	if _, err := mem.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: "a"}, CollectionID: "c1", Title: "a"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	store := &faultyStore[catalog.CollectionTab]{EntityStore: mem, createErr: errors.New("read-only")}
	exec, log := reconExecutor()

	_, err := saga.New[[]string, struct{}]("delete some",
		saga.DeleteSelected[catalog.CollectionTab]("delete", store, func(ids []string) []string { return ids }, tabID),
	).Run(ctx, exec, []string{"a", "missing"})

	requireReconciliation(t, err, log, "delete")
	if _, err := mem.Retrieve(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Retrieve(a) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteRecord_ReappearedRecordNeedsReconciliation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewStore[catalog.CollectionTab]()

	if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: "tab-1"}, CollectionID: "c1", Title: "Old"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	exec, log := reconExecutor()

	// A concurrent writer recreates tab-1 before the operation fails.
	recreate := saga.Func[string]("concurrent create", func(ctx context.Context, id string) error {
		if _, err := store.Create(ctx, &catalog.CollectionTab{Base: catalog.Base{ID: id}, CollectionID: "c9", Title: "New"}); err != nil {
			return err
		}
		return errors.New("boom")
	}, nil)

	_, err := saga.New[string, struct{}]("delete tab",
		saga.DeleteRecord[catalog.CollectionTab]("delete", store, func(id string) string { return id }),
		recreate,
	).Run(ctx, exec, "tab-1")

	requireReconciliation(t, err, log, "delete")
	se, _ := saga.AsError(err)
	if se != nil && len(se.Report.Failures) == 1 && !strings.Contains(se.Report.Failures[0].Error, domain.ErrConflict.Error()) {
		t.Errorf("failure = %q, want a conflict", se.Report.Failures[0].Error)
	}
	if got, _ := store.Retrieve(ctx, "tab-1"); got == nil || got.Title != "New" {
		t.Errorf("Retrieve(tab-1) = %+v, want the concurrent record kept", got)
	}
}

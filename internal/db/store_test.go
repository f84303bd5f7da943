package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/existflow/duetask/internal/due"
)

// setupTestDB opens a fresh database in a temp directory and runs migrations.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func TestCreateAndListRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	now := time.Now()
	d := due.Duration{}.Add(1, 2, 30)
	dueAt := d.DueAt(now)

	id, created, err := database.CreateTask(ctx, "Write report", "quarterly numbers", &dueAt)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if !created {
		t.Fatal("expected task to be created")
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	tasks, err := database.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.ID != id || got.Title != "Write report" || got.Body != "quarterly numbers" {
		t.Fatalf("unexpected task: %+v", got)
	}
	if got.DueAt == nil {
		t.Fatal("expected a due date")
	}
	// Stored with second precision.
	want := now.Add(26*time.Hour + 30*time.Minute).Truncate(time.Second)
	if !got.DueAt.Equal(want) {
		t.Fatalf("due date: got %v, want %v", got.DueAt, want)
	}
}

func TestCreateTaskWithoutDueDate(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	id, created, err := database.CreateTask(ctx, "No deadline", "", nil)
	if err != nil || !created {
		t.Fatalf("CreateTask failed: created=%v err=%v", created, err)
	}

	task, err := database.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.DueAt != nil {
		t.Fatalf("expected no due date, got %v", task.DueAt)
	}
}

func TestCreateTaskRejectsBlankTitle(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		id, created, err := database.CreateTask(ctx, title, "body", nil)
		if err != nil {
			t.Fatalf("CreateTask(%q) returned error: %v", title, err)
		}
		if created || id != 0 {
			t.Fatalf("CreateTask(%q) should be rejected, got id=%d created=%v", title, id, created)
		}
	}

	n, err := database.CountTasks(ctx)
	if err != nil {
		t.Fatalf("CountTasks failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty store, got %d tasks", n)
	}
}

func TestCreateTaskTrimsWhitespace(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	id, created, err := database.CreateTask(ctx, "  Buy milk  ", "  2 liters  ", nil)
	if err != nil || !created {
		t.Fatalf("CreateTask failed: created=%v err=%v", created, err)
	}

	task, err := database.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Title != "Buy milk" || task.Body != "2 liters" {
		t.Fatalf("expected trimmed fields, got %q / %q", task.Title, task.Body)
	}
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	id, _, err := database.CreateTask(ctx, "Doomed", "", nil)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := database.DeleteTask(ctx, id); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := database.DeleteTask(ctx, id); err != nil {
		t.Fatalf("second delete should succeed: %v", err)
	}
	if err := database.DeleteTask(ctx, 99999); err != nil {
		t.Fatalf("deleting unknown id should succeed: %v", err)
	}

	n, _ := database.CountTasks(ctx)
	if n != 0 {
		t.Fatalf("expected empty store after deletes, got %d", n)
	}
}

func TestListTasksOrderedByID(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, _, err := database.CreateTask(ctx, title, "", nil); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	tasks, err := database.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].ID <= tasks[i-1].ID {
			t.Fatalf("tasks out of id order: %d then %d", tasks[i-1].ID, tasks[i].ID)
		}
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	first, _, err := database.CreateTask(ctx, "one", "", nil)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := database.DeleteTask(ctx, first); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	second, _, err := database.CreateTask(ctx, "two", "", nil)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if second <= first {
		t.Fatalf("id %d reused after deleting %d", second, first)
	}
}

func TestClearTasks(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := database.CreateTask(ctx, "task", "", nil); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	if err := database.ClearTasks(ctx); err != nil {
		t.Fatalf("ClearTasks failed: %v", err)
	}
	n, _ := database.CountTasks(ctx)
	if n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}

func TestOpenReportsStorageUnavailable(t *testing.T) {
	// A directory where the db file should be makes sqlite fail on ping.
	dir := t.TempDir()
	if _, err := Open(dir); err == nil {
		t.Fatal("expected error opening a directory as database")
	} else if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

package localize

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamehub-app/internal/domain/games"
)

func TestDispatchSyncReturnsPipelineError(t *testing.T) {
	db := testDB(t)
	pipeline := NewPipeline(db, &fakeTranslator{fail: true})
	d := NewDispatcher(pipeline, ModeSync, 0)
	d.Start(context.Background())
	defer d.Close()

	game := seedGame(t, db, "Story.", "")
	if err := d.Dispatch(context.Background(), game.ID, "fr"); err == nil {
		t.Error("sync dispatch should surface the pipeline error")
	}
}

func TestDispatchQueueDefersWork(t *testing.T) {
	db := testDB(t)
	pipeline := NewPipeline(db, &fakeTranslator{})
	d := NewDispatcher(pipeline, ModeQueue, 4)
	d.Start(context.Background())

	game := seedGame(t, db, "Story.", "Summary.")
	if err := d.Dispatch(context.Background(), game.ID, "fr"); err != nil {
		t.Fatalf("queue dispatch: %v", err)
	}

	// Close drains the queue before returning.
	d.Close()

	var count int64
	db.Model(&games.GameTranslation{}).Where("game_id = ?", game.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected the queued job to persist a row, got %d", count)
	}
}

func TestDispatchModesPersistIdenticalRows(t *testing.T) {
	db := testDB(t)
	pipeline := NewPipeline(db, &fakeTranslator{})

	syncGame := seedGame(t, db, "Shared storyline.", "Shared summary.")
	queueGame := &games.Game{Title: "Queue Twin", Slug: "queue-twin"}
	storyline, summary := "Shared storyline.", "Shared summary."
	queueGame.Storyline, queueGame.Summary = &storyline, &summary
	if err := db.Create(queueGame).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}

	syncD := NewDispatcher(pipeline, ModeSync, 0)
	if err := syncD.Dispatch(context.Background(), syncGame.ID, "fr"); err != nil {
		t.Fatalf("sync dispatch: %v", err)
	}

	queueD := NewDispatcher(pipeline, ModeQueue, 4)
	queueD.Start(context.Background())
	if err := queueD.Dispatch(context.Background(), queueGame.ID, "fr"); err != nil {
		t.Fatalf("queue dispatch: %v", err)
	}
	queueD.Close()

	var syncRow, queueRow games.GameTranslation
	if err := db.Where("game_id = ?", syncGame.ID).First(&syncRow).Error; err != nil {
		t.Fatalf("sync row: %v", err)
	}
	if err := db.Where("game_id = ?", queueGame.ID).First(&queueRow).Error; err != nil {
		t.Fatalf("queue row: %v", err)
	}

	if *syncRow.Storyline != *queueRow.Storyline ||
		*syncRow.Summary != *queueRow.Summary ||
		syncRow.SourceHash != queueRow.SourceHash ||
		syncRow.Provider != queueRow.Provider {
		t.Error("sync and queue modes persisted different rows for identical input")
	}
}

func TestCloseUnblocksPendingDispatch(t *testing.T) {
	db := testDB(t)
	// No worker is started, so the single buffer slot fills and the second
	// dispatch has to wait on the queue.
	d := NewDispatcher(NewPipeline(db, &fakeTranslator{}), ModeQueue, 1)

	if err := d.Dispatch(context.Background(), 1, "fr"); err != nil {
		t.Fatalf("first dispatch: %v", err)
	}

	dispatchErr := make(chan error, 1)
	go func() {
		dispatchErr <- d.Dispatch(context.Background(), 2, "fr")
	}()

	closed := make(chan struct{})
	go func() {
		d.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return while a dispatch was waiting on a full queue")
	}

	select {
	case err := <-dispatchErr:
		if !errors.Is(err, ErrDispatcherClosed) {
			t.Errorf("pending dispatch err = %v, want ErrDispatcherClosed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pending dispatch never returned after Close")
	}
}

func TestDispatchAfterCloseFails(t *testing.T) {
	db := testDB(t)
	d := NewDispatcher(NewPipeline(db, &fakeTranslator{}), ModeQueue, 4)
	d.Start(context.Background())
	d.Close()

	if err := d.Dispatch(context.Background(), 1, "fr"); err != ErrDispatcherClosed {
		t.Errorf("err = %v, want ErrDispatcherClosed", err)
	}
}

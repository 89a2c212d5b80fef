package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"agencia_maker/internal/adapter/persistence/kvstore"
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

type failingStore struct{ err error }

func (s failingStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, s.err }
func (s failingStore) Put(context.Context, string, []byte) error { return s.err }

// flakyStore fails the next Get once when armed.
type flakyStore struct {
	*kvstore.MemoryStore
	mu      sync.Mutex
	failGet bool
}

func (s *flakyStore) arm() {
	s.mu.Lock()
	s.failGet = true
	s.mu.Unlock()
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	fail := s.failGet
	s.failGet = false
	s.mu.Unlock()
	if fail {
		return nil, false, errors.New("transient")
	}
	return s.MemoryStore.Get(ctx, key)
}

func TestInitialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repos := NewRepositories(store, zap.NewNop(), fixedNow)

	if err := repos.Initialize(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := repos.Users.Save(ctx, entities.User{ID: "u-new", Name: "Nova"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := repos.Initialize(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := repos.Users.GetByID(ctx, "u-new"); !ok {
		t.Fatalf("second Initialize must not overwrite persisted data")
	}
	for _, key := range []string{UsersKey, PrintJobsKey, ConversationsKey} {
		if _, found, _ := store.Get(ctx, key); !found {
			t.Fatalf("expected key %s to be seeded", key)
		}
	}
}

func TestList_FailsOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("storage unavailable", func(t *testing.T) {
		repos := NewRepositories(failingStore{err: errors.New("disk gone")}, zap.NewNop(), fixedNow)
		if diff := cmp.Diff(seed.Users(), repos.Users.List(ctx)); diff != "" {
			t.Fatalf("expected seed users (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(seed.PrintJobs(fixedNow()), repos.PrintJobs.List(ctx)); diff != "" {
			t.Fatalf("expected seed jobs (-want +got):\n%s", diff)
		}
	})

	t.Run("empty storage", func(t *testing.T) {
		repos := NewRepositories(kvstore.NewMemoryStore(), zap.NewNop(), fixedNow)
		if got := len(repos.Conversations.List(ctx)); got != len(seed.Conversations(fixedNow())) {
			t.Fatalf("expected seed conversations, got %d", got)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		_ = store.Put(ctx, UsersKey, []byte("{not json"))
		repos := NewRepositories(store, zap.NewNop(), fixedNow)
		if got := len(repos.Users.List(ctx)); got != len(seed.Users()) {
			t.Fatalf("expected seed users, got %d", got)
		}
	})

	t.Run("write errors surface", func(t *testing.T) {
		repos := NewRepositories(failingStore{err: errors.New("read only")}, zap.NewNop(), fixedNow)
		if err := repos.Users.Save(ctx, entities.User{ID: "x"}); err == nil {
			t.Fatalf("expected write error")
		}
	})
}

func TestUserRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(kvstore.NewMemoryStore(), zap.NewNop())
	before := len(repo.List(ctx))

	u, _ := repo.GetByID(ctx, "maker-1")
	u.Bio = "Especialista em engrenagens"
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := len(repo.List(ctx)); got != before {
		t.Fatalf("replace must keep size: got %d want %d", got, before)
	}
	got, _ := repo.GetByID(ctx, "maker-1")
	if got.Bio != "Especialista em engrenagens" {
		t.Fatalf("expected updated bio, got %q", got.Bio)
	}

	if err := repo.Save(ctx, entities.User{ID: "maker-9", Name: "Nova"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	list := repo.List(ctx)
	if len(list) != before+1 || list[len(list)-1].ID != "maker-9" {
		t.Fatalf("expected appended user, got %+v", list[len(list)-1])
	}
}

func TestUserRepository_UpdateFunc(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(kvstore.NewMemoryStore(), zap.NewNop())

	got, err := repo.UpdateFunc(ctx, "maker-3", func(u *entities.User) error {
		u.IsCertified = true
		u.ID = "tampered"
		return nil
	})
	if err != nil || got.ID != "maker-3" || !got.IsCertified {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}

	missing, err := repo.UpdateFunc(ctx, "nobody", func(*entities.User) error { return nil })
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero user for unknown id, got %+v err=%v", missing, err)
	}

	boom := errors.New("boom")
	if _, err := repo.UpdateFunc(ctx, "maker-1", func(*entities.User) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
}

func TestPrintJobRepository_CreatePrependsAndUpdateInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewPrintJobRepository(kvstore.NewMemoryStore(), zap.NewNop(), fixedNow)

	job := entities.PrintJob{ID: "job-new", Title: "Vaso", Price: 80, ServiceFee: 12, Status: entities.PrintJobStatusAberto, PaymentStatus: entities.PaymentStatusPendente}
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	list := repo.List(ctx)
	if list[0].ID != "job-new" {
		t.Fatalf("expected newest first, got %s", list[0].ID)
	}

	job.Status = entities.PrintJobStatusConcluido
	updated, err := repo.Update(ctx, job)
	if err != nil || updated.Status != entities.PrintJobStatusConcluido {
		t.Fatalf("unexpected update %+v err=%v", updated, err)
	}
	after := repo.List(ctx)
	if len(after) != len(list) || after[0].ID != "job-new" {
		t.Fatalf("update must keep position and size")
	}

	missing, err := repo.Update(ctx, entities.PrintJob{ID: "ghost"})
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero job for unknown id, got %+v err=%v", missing, err)
	}
}

func TestPrintJobRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewPrintJobRepository(kvstore.NewMemoryStore(), zap.NewNop(), fixedNow)
	base := len(repo.List(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, entities.PrintJob{ID: fmt.Sprintf("job-c%d", i)})
		}(i)
	}
	wg.Wait()

	if got := len(repo.List(ctx)); got != base+20 {
		t.Fatalf("lost updates: got %d want %d", got, base+20)
	}
}

func TestConversationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationRepository(kvstore.NewMemoryStore(), zap.NewNop(), fixedNow)

	t.Run("find existing pair in any order", func(t *testing.T) {
		conv, created, err := repo.FindOrCreate(ctx, "maker-2", "maker-1", func() entities.Conversation {
			t.Fatalf("factory must not run for an existing pair")
			return entities.Conversation{}
		})
		if err != nil || created || conv.ID != "convo-1" {
			t.Fatalf("unexpected %+v created=%v err=%v", conv, created, err)
		}
	})

	t.Run("create new pair once", func(t *testing.T) {
		newConv := func() entities.Conversation {
			return entities.Conversation{ID: "convo-new", ParticipantIDs: [2]string{"maker-2", "maker-3"}}
		}
		conv, created, err := repo.FindOrCreate(ctx, "maker-2", "maker-3", newConv)
		if err != nil || !created || conv.ID != "convo-new" {
			t.Fatalf("unexpected %+v created=%v err=%v", conv, created, err)
		}
		_, created, _ = repo.FindOrCreate(ctx, "maker-3", "maker-2", newConv)
		if created {
			t.Fatalf("expected existing conversation on second call")
		}
	})

	t.Run("append message", func(t *testing.T) {
		msg := entities.ChatMessage{ID: "m-1", SenderID: "maker-1", Text: "oi", Timestamp: fixedNow()}
		conv, err := repo.AppendMessage(ctx, "convo-2", msg)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		last, _ := conv.LastMessage()
		if last.ID != "m-1" || len(conv.Messages) != 3 {
			t.Fatalf("unexpected messages %+v", conv.Messages)
		}
		stored, _ := repo.GetByID(ctx, "convo-2")
		if len(stored.Messages) != 3 {
			t.Fatalf("append not persisted")
		}

		missing, err := repo.AppendMessage(ctx, "ghost", msg)
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero conversation, got %+v err=%v", missing, err)
		}
	})
}

func TestMutate_NeverOverwritesOnUnreadableStore(t *testing.T) {
	ctx := context.Background()

	t.Run("transient read error", func(t *testing.T) {
		store := &flakyStore{MemoryStore: kvstore.NewMemoryStore()}
		repos := NewRepositories(store, zap.NewNop(), fixedNow)
		if err := repos.Initialize(ctx); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if err := repos.Users.Save(ctx, entities.User{ID: "persisted-user", Name: "Salva"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		store.arm()
		if err := repos.Users.Save(ctx, entities.User{ID: "second-user"}); err == nil {
			t.Fatalf("expected save to fail while storage is unreadable")
		}
		if _, ok := repos.Users.GetByID(ctx, "persisted-user"); !ok {
			t.Fatalf("previously saved user must survive a failed read")
		}
		if _, ok := repos.Users.GetByID(ctx, "second-user"); ok {
			t.Fatalf("failed save must not be persisted")
		}

		store.arm()
		if _, err := repos.PrintJobs.UpdateFunc(ctx, "job-1", func(j *entities.PrintJob) error { return nil }); err == nil {
			t.Fatalf("expected update to fail while storage is unreadable")
		}
		if err := repos.Users.Save(ctx, entities.User{ID: "second-user"}); err != nil {
			t.Fatalf("save after recovery: %v", err)
		}
		if got := len(repos.Users.List(ctx)); got != len(seed.Users())+2 {
			t.Fatalf("expected seed plus two saved users, got %d", got)
		}
	})

	t.Run("malformed stored value", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		_ = store.Put(ctx, PrintJobsKey, []byte("{not json"))
		repos := NewRepositories(store, zap.NewNop(), fixedNow)

		if err := repos.PrintJobs.Create(ctx, entities.PrintJob{ID: "job-new"}); err == nil {
			t.Fatalf("expected create to fail over a malformed collection")
		}
		data, _, _ := store.Get(ctx, PrintJobsKey)
		if string(data) != "{not json" {
			t.Fatalf("stored value must be left untouched, got %q", data)
		}
	})
}

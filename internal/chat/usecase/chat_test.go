package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"companion-srv/internal/chat"
	"companion-srv/internal/chat/repository"
	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/orchestrator"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
	"companion-srv/pkg/log"

	"github.com/google/uuid"
)

type fakeRepo struct {
	conversations map[string]model.Conversation
	messages      []model.Message
	createErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{conversations: map[string]model.Conversation{}}
}

func (f *fakeRepo) CreateConversation(ctx context.Context, opt repository.CreateConversationOptions) (model.Conversation, error) {
	if f.createErr != nil {
		return model.Conversation{}, f.createErr
	}
	conv := model.Conversation{
		ID:     uuid.New().String(),
		UserID: opt.UserID,
		Title:  opt.Title,
		Status: model.ConversationStatusActive,
	}
	f.conversations[conv.ID] = conv
	return conv, nil
}

func (f *fakeRepo) GetConversationByID(ctx context.Context, id string) (model.Conversation, error) {
	conv, ok := f.conversations[id]
	if !ok {
		return model.Conversation{}, errors.New("no rows")
	}
	return conv, nil
}

func (f *fakeRepo) ListConversations(ctx context.Context, opt repository.ListConversationsOptions) ([]model.Conversation, error) {
	var out []model.Conversation
	for _, c := range f.conversations {
		if c.UserID == opt.UserID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateConversationLastMessage(ctx context.Context, opt repository.UpdateLastMessageOptions) error {
	conv := f.conversations[opt.ConversationID]
	conv.MessageCount = opt.MessageCount
	f.conversations[opt.ConversationID] = conv
	return nil
}

func (f *fakeRepo) ArchiveConversation(ctx context.Context, id string) error {
	conv := f.conversations[id]
	conv.Status = model.ConversationStatusArchived
	f.conversations[id] = conv
	return nil
}

func (f *fakeRepo) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	msg := model.Message{
		ID:             uuid.New().String(),
		ConversationID: opt.ConversationID,
		Role:           opt.Role,
		Content:        opt.Content,
		Emotion:        opt.Emotion,
		SafetyLevel:    opt.SafetyLevel,
		Backend:        opt.Backend,
		Metadata:       opt.Metadata,
	}
	f.messages = append(f.messages, msg)
	return msg, nil
}

func (f *fakeRepo) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	var out []model.Message
	for _, m := range f.messages {
		if m.ConversationID == opt.ConversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeOrchestrator struct {
	output orchestrator.ProcessOutput
	err    error
}

func (f *fakeOrchestrator) ProcessMessage(ctx context.Context, input orchestrator.ProcessInput) (orchestrator.ProcessOutput, error) {
	if f.err != nil {
		return orchestrator.ProcessOutput{}, f.err
	}
	return f.output, nil
}

func (f *fakeOrchestrator) Classify(ctx context.Context, text string) (emotion.Signal, error) {
	return f.output.Emotion, nil
}

func (f *fakeOrchestrator) Evaluate(ctx context.Context, text string) (emotion.Signal, safety.Assessment, error) {
	return f.output.Emotion, f.output.Safety, nil
}

func (f *fakeOrchestrator) Stats() orchestrator.Stats {
	return orchestrator.Stats{}
}

type fakeProducer struct {
	events []chat.MessageProcessedEvent
}

func (f *fakeProducer) PublishMessageProcessed(ctx context.Context, event chat.MessageProcessedEvent) error {
	f.events = append(f.events, event)
	return nil
}

func processedOutput() orchestrator.ProcessOutput {
	sig := emotion.NeutralSignal(emotion.SourceRuleBased)
	sig.PrimaryEmotion = emotion.EmotionStressed
	return orchestrator.ProcessOutput{
		Emotion: sig,
		Safety:  safety.Assessment{Level: safety.LevelNormal},
		Response: response.Result{
			Message:      "That sounds like a lot to handle.",
			ResponseType: response.TypeSupportive,
		},
		ServicesUsed: []string{model.BackendRuleBased},
		TimingMs:     12,
	}
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects out-of-bounds messages", func(t *testing.T) {
		uc := New(newFakeRepo(), &fakeOrchestrator{output: processedOutput()}, nil, log.NewNoop())

		if _, err := uc.Chat(ctx, sc, chat.ChatInput{Message: "hi"}); !errors.Is(err, chat.ErrMessageTooShort) {
			t.Errorf("short message: got %v, want ErrMessageTooShort", err)
		}
		long := strings.Repeat("a", chat.MaxMessageLength+1)
		if _, err := uc.Chat(ctx, sc, chat.ChatInput{Message: long}); !errors.Is(err, chat.ErrMessageTooLong) {
			t.Errorf("long message: got %v, want ErrMessageTooLong", err)
		}
	})

	t.Run("creates conversation and persists both messages", func(t *testing.T) {
		repo := newFakeRepo()
		producer := &fakeProducer{}
		uc := New(repo, &fakeOrchestrator{output: processedOutput()}, producer, log.NewNoop())

		out, err := uc.Chat(ctx, sc, chat.ChatInput{Message: "today was exhausting and stressful"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ConversationID == "" {
			t.Fatal("conversation id empty")
		}
		if out.Message != "That sounds like a lot to handle." {
			t.Errorf("message: got %q", out.Message)
		}

		if len(repo.messages) != 2 {
			t.Fatalf("messages persisted: got %d, want 2", len(repo.messages))
		}
		if repo.messages[0].Role != model.MessageRoleUser || repo.messages[1].Role != model.MessageRoleAssistant {
			t.Errorf("roles: got %s/%s", repo.messages[0].Role, repo.messages[1].Role)
		}
		if repo.messages[1].Emotion != emotion.EmotionStressed {
			t.Errorf("assistant emotion: got %s", repo.messages[1].Emotion)
		}
		if repo.conversations[out.ConversationID].MessageCount != 2 {
			t.Errorf("message count: got %d, want 2", repo.conversations[out.ConversationID].MessageCount)
		}

		if len(producer.events) != 1 {
			t.Fatalf("events published: got %d, want 1", len(producer.events))
		}
		event := producer.events[0]
		if event.Emotion != emotion.EmotionStressed || event.ConversationID != out.ConversationID {
			t.Errorf("event: got %+v", event)
		}
		if event.UserHash == sc.UserID || event.UserHash == "" {
			t.Error("user id must be hashed in the event")
		}
	})

	t.Run("title truncated from first message", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, &fakeOrchestrator{output: processedOutput()}, nil, log.NewNoop())

		long := strings.Repeat("x", chat.MaxTitleLength+10)
		out, err := uc.Chat(ctx, sc, chat.ChatInput{Message: long})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		title := repo.conversations[out.ConversationID].Title
		if len(title) != chat.MaxTitleLength+3 || !strings.HasSuffix(title, "...") {
			t.Errorf("title: got %q", title)
		}
	})

	t.Run("rejects foreign and archived conversations", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, &fakeOrchestrator{output: processedOutput()}, nil, log.NewNoop())

		foreign, _ := repo.CreateConversation(ctx, repository.CreateConversationOptions{UserID: "someone-else"})
		if _, err := uc.Chat(ctx, sc, chat.ChatInput{ConversationID: foreign.ID, Message: "hello there"}); !errors.Is(err, chat.ErrConversationNotFound) {
			t.Errorf("foreign conversation: got %v, want ErrConversationNotFound", err)
		}

		mine, _ := repo.CreateConversation(ctx, repository.CreateConversationOptions{UserID: sc.UserID})
		_ = repo.ArchiveConversation(ctx, mine.ID)
		if _, err := uc.Chat(ctx, sc, chat.ChatInput{ConversationID: mine.ID, Message: "hello there"}); !errors.Is(err, chat.ErrConversationArchived) {
			t.Errorf("archived conversation: got %v, want ErrConversationArchived", err)
		}
	})
}

func TestArchiveConversation(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	repo := newFakeRepo()
	uc := New(repo, &fakeOrchestrator{output: processedOutput()}, nil, log.NewNoop())

	conv, _ := repo.CreateConversation(ctx, repository.CreateConversationOptions{UserID: sc.UserID})
	if err := uc.ArchiveConversation(ctx, sc, chat.ArchiveConversationInput{ConversationID: conv.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.conversations[conv.ID].Status != model.ConversationStatusArchived {
		t.Error("conversation not archived")
	}

	// Idempotent
	if err := uc.ArchiveConversation(ctx, sc, chat.ArchiveConversationInput{ConversationID: conv.ID}); err != nil {
		t.Errorf("second archive: got %v, want nil", err)
	}

	if err := uc.ArchiveConversation(ctx, model.Scope{UserID: "intruder"}, chat.ArchiveConversationInput{ConversationID: conv.ID}); !errors.Is(err, chat.ErrConversationNotFound) {
		t.Errorf("foreign archive: got %v, want ErrConversationNotFound", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
)

type fakeChatRepo struct {
	saved   []chat.ChatMessage
	history []chat.ChatMessage
	saveErr error
}

func (f *fakeChatRepo) SaveMessage(ctx context.Context, m chat.ChatMessage) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, m)
	return "msg-1", nil
}

func (f *fakeChatRepo) GetMessagesBySession(ctx context.Context, sessionID string, limit, offset int) ([]chat.ChatMessage, error) {
	return f.history, nil
}

type fakeRoster struct {
	members map[string]bool
	err     error
}

func (f *fakeRoster) IsOnRoster(ctx context.Context, sessionID, profileID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.members[profileID], nil
}

func TestSendMessagePersistsForParticipants(t *testing.T) {
	repo := &fakeChatRepo{}
	uc := NewSendMessageUseCase(repo, &fakeRoster{members: map[string]bool{"p1": true}})

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		SessionID: "s1", SenderID: "p1", Body: "  who's bringing the ball?  ",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if msg.ID != "msg-1" {
		t.Errorf("ID = %q", msg.ID)
	}
	if msg.Body != "who's bringing the ball?" {
		t.Errorf("Body = %q, want trimmed", msg.Body)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("CreatedAt must be stamped")
	}
}

func TestSendMessageRejectsNonParticipants(t *testing.T) {
	repo := &fakeChatRepo{}
	uc := NewSendMessageUseCase(repo, &fakeRoster{members: map[string]bool{}})

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SessionID: "s1", SenderID: "stranger", Body: "hi",
	})
	if !errors.Is(err, chat.ErrNotParticipant) {
		t.Errorf("err = %v, want ErrNotParticipant", err)
	}
	if len(repo.saved) != 0 {
		t.Error("nothing may be persisted for non-participants")
	}
}

func TestSendMessageRejectsEmptyBody(t *testing.T) {
	uc := NewSendMessageUseCase(&fakeChatRepo{}, &fakeRoster{members: map[string]bool{"p1": true}})

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SessionID: "s1", SenderID: "p1", Body: "   ",
	})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestJoinRoomRequiresMembership(t *testing.T) {
	uc := NewJoinRoomUseCase(&fakeRoster{members: map[string]bool{"p1": true}})

	if err := uc.Execute(context.Background(), JoinRoomInput{SessionID: "s1", UserID: "p1"}); err != nil {
		t.Errorf("member join: %v", err)
	}
	err := uc.Execute(context.Background(), JoinRoomInput{SessionID: "s1", UserID: "stranger"})
	if !errors.Is(err, chat.ErrNotParticipant) {
		t.Errorf("stranger join err = %v, want ErrNotParticipant", err)
	}
}

package service

import (
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/util"
	"adaptive_tutor_backend/pkg/logger"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ChatStore interface {
	Append(ctx context.Context, profileID string, msgs ...model.ChatMessage) error
	Recent(ctx context.Context, profileID string, n int) ([]model.ChatMessage, error)
}

// TutorChatService answers free-form questions through the same fallback
// client as content generation.
type TutorChatService struct {
	Generator Generator
	Store     ChatStore
	log       *zap.Logger
	now       func() time.Time
}

func NewTutorChatService(gen Generator, store ChatStore) *TutorChatService {
	return &TutorChatService{
		Generator: gen,
		Store:     store,
		log:       logger.Log.With(zap.String("service", "TutorChatService")),
		now:       time.Now,
	}
}

// Welcome is the greeting shown before the first turn.
func Welcome(p *model.StudentProfile) model.ChatMessage {
	np := numerologyOf(p)
	name := "bạn"
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		name = fields[len(fields)-1]
	}
	return model.ChatMessage{
		ID:   "welcome",
		Role: model.ChatRoleModel,
		Text: fmt.Sprintf("Chào %s! Mình là AI Tutor đây. \n\nVới tư chất của một **%s**, mình tin bạn sẽ chinh phục môn Toán lớp %d dễ dàng. \n\nBạn đang gặp khó khăn ở bài nào? Hãy chọn mức độ hỗ trợ bên dưới nhé! 👇",
			name, orDefault(np.Title, "Nhà Toán Học Tương Lai"), p.Grade),
	}
}

// History returns stored turns oldest first, or the welcome message when
// nothing is stored yet.
func (s *TutorChatService) History(ctx context.Context, p *model.StudentProfile, n int) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	if s.Store != nil {
		var err error
		msgs, err = s.Store.Recent(ctx, p.ID, n)
		if err != nil {
			return nil, err
		}
	}
	if len(msgs) == 0 {
		return []model.ChatMessage{Welcome(p)}, nil
	}
	return msgs, nil
}

// Send asks the tutor and stores both turns on success. A failing chat store
// only costs context; it never fails the reply.
func (s *TutorChatService) Send(ctx context.Context, p *model.StudentProfile, message string, level model.HelpLevel) (model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return model.ChatMessage{}, util.ErrEmptyMessage
	}
	if !level.Valid() {
		level = model.HelpGuide
	}

	var history []model.ChatMessage
	if s.Store != nil {
		recent, err := s.Store.Recent(ctx, p.ID, chatHistoryTurns)
		if err != nil {
			s.log.Warn("load chat history failed", zap.String("profile_id", p.ID), zap.Error(err))
		} else {
			history = recent
		}
	}

	req := ComposeTutorChat(p, level, message, history)
	text, modelID, err := s.Generator.GenerateText(ctx, req)
	if err != nil {
		return model.ChatMessage{}, err
	}

	userMsg := model.ChatMessage{ID: model.GenerateUUID(), Role: model.ChatRoleUser, Text: message, Timestamp: s.now()}
	reply := model.ChatMessage{ID: model.GenerateUUID(), Role: model.ChatRoleModel, Text: text, Timestamp: s.now()}
	if s.Store != nil {
		if err := s.Store.Append(ctx, p.ID, userMsg, reply); err != nil {
			s.log.Warn("store chat turns failed", zap.String("profile_id", p.ID), zap.Error(err))
		}
	}
	s.log.Info("tutor replied", zap.String("profile_id", p.ID), zap.String("model", modelID), zap.String("help_level", string(level)))
	return reply, nil
}

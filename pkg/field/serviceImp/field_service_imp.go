package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"agriai/entities"
	"agriai/pkg/events"
	repo "agriai/pkg/field/repository"
	"agriai/pkg/field/service"
	"agriai/pkg/validation"
)

type fieldSvc struct {
	r   repo.FieldRepository
	pub events.Publisher
	log *zap.Logger
}

func NewFieldService(r repo.FieldRepository, pub events.Publisher, log *zap.Logger) service.FieldService {
	return &fieldSvc{r: r, pub: pub, log: log}
}

func (s *fieldSvc) ListFields(ctx context.Context, uid string) ([]entities.Field, error) {
	return s.r.ListByUser(ctx, uid)
}

func (s *fieldSvc) CreateField(ctx context.Context, uid string, body []byte) (*entities.Field, error) {
	f, err := validation.ParseFieldCreate(body, uid)
	if err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	s.publish(ctx, events.TopicFieldCreated, events.FieldChanged{Field: f})
	return f, nil
}

func (s *fieldSvc) UpdateField(ctx context.Context, uid, id string, body []byte) (*entities.Field, error) {
	f, err := s.r.FindByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	patch, err := validation.ParseFieldPatch(body)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return f, nil
	}
	patch.Apply(f)
	if err := s.r.Update(ctx, f); err != nil {
		return nil, err
	}
	s.publish(ctx, events.TopicFieldUpdated, events.FieldChanged{Field: f})
	return f, nil
}

func (s *fieldSvc) DeleteField(ctx context.Context, uid, id string) error {
	if err := s.r.Delete(ctx, id, uid); err != nil {
		return err
	}
	s.publish(ctx, events.TopicFieldDeleted, events.RecordDeleted{ID: id, UserID: uid})
	return nil
}

func (s *fieldSvc) publish(ctx context.Context, topic string, ev any) {
	if err := s.pub.Publish(ctx, topic, ev); err != nil {
		s.log.Warn("publish event", zap.String("topic", topic), zap.Error(err))
	}
}

package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"agriai/entities"
	"agriai/pkg/events"
	repo "agriai/pkg/livestock/repository"
	"agriai/pkg/livestock/service"
	"agriai/pkg/validation"
)

type livestockSvc struct {
	r   repo.LivestockRepository
	pub events.Publisher
	log *zap.Logger
}

func NewLivestockService(r repo.LivestockRepository, pub events.Publisher, log *zap.Logger) service.LivestockService {
	return &livestockSvc{r: r, pub: pub, log: log}
}

func (s *livestockSvc) ListLivestock(ctx context.Context, uid string) ([]entities.Livestock, error) {
	return s.r.ListByUser(ctx, uid)
}

func (s *livestockSvc) CreateLivestock(ctx context.Context, uid string, body []byte) (*entities.Livestock, error) {
	l, err := validation.ParseLivestockCreate(body, uid)
	if err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, l); err != nil {
		return nil, err
	}
	s.publish(ctx, events.TopicLivestockCreated, events.LivestockChanged{Livestock: l})
	return l, nil
}

// UpdateLivestock checks ownership first, so a foreign id is a 404 even when
// the body is invalid.
func (s *livestockSvc) UpdateLivestock(ctx context.Context, uid, id string, body []byte) (*entities.Livestock, error) {
	l, err := s.r.FindByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	patch, err := validation.ParseLivestockPatch(body)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return l, nil
	}
	patch.Apply(l)
	if err := s.r.Update(ctx, l); err != nil {
		return nil, err
	}
	s.publish(ctx, events.TopicLivestockUpdated, events.LivestockChanged{Livestock: l})
	return l, nil
}

func (s *livestockSvc) DeleteLivestock(ctx context.Context, uid, id string) error {
	if err := s.r.Delete(ctx, id, uid); err != nil {
		return err
	}
	s.publish(ctx, events.TopicLivestockDeleted, events.RecordDeleted{ID: id, UserID: uid})
	return nil
}

func (s *livestockSvc) publish(ctx context.Context, topic string, ev any) {
	if err := s.pub.Publish(ctx, topic, ev); err != nil {
		s.log.Warn("publish event", zap.String("topic", topic), zap.Error(err))
	}
}

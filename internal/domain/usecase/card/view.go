package card

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
)

func toCardView(card *entity.Card, ownerName string, now time.Time) *usecase.CardView {
	return &usecase.CardView{
		ID:           card.ID,
		MaskedNumber: card.MaskedNumber,
		OwnerID:      card.OwnerID,
		OwnerName:    ownerName,
		Currency:     card.Currency,
		ExpiryDate:   card.ExpiryDate,
		Status:       card.EffectiveStatus(now),
		Active:       card.Active,
		Expired:      card.IsExpired(now),
		Balance:      card.GetBalance(),
	}
}

// ownerNames loads owner display names on demand, once per owner
type ownerNames struct {
	service *Service
	names   map[uint64]string
}

func (o *ownerNames) lookup(ctx context.Context, ownerID uint64) string {
	if name, ok := o.names[ownerID]; ok {
		return name
	}

	name := ""
	user, err := o.service.uow.GetUserRepository(ctx).GetByID(ctx, ownerID)
	if err != nil {
		o.service.logger.Warn("Failed to load card owner", map[string]any{
			"user_id": ownerID,
			"error":   err.Error(),
		})
	} else {
		name = user.FullName()
	}

	o.names[ownerID] = name
	return name
}

func (s *Service) owners() *ownerNames {
	return &ownerNames{service: s, names: make(map[uint64]string)}
}

func (s *Service) view(ctx context.Context, card *entity.Card) *usecase.CardView {
	return toCardView(card, s.owners().lookup(ctx, card.OwnerID), s.timeProvider.Now())
}

func (s *Service) page(ctx context.Context, cards []*entity.Card, req entity.PageRequest, total int64) entity.Page[usecase.CardView] {
	owners := s.owners()
	now := s.timeProvider.Now()

	views := make([]usecase.CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, *toCardView(card, owners.lookup(ctx, card.OwnerID), now))
	}
	return entity.NewPage(views, req, total)
}

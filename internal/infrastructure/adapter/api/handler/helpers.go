package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errs.ErrInvalidRequest, name)
	}
	return id, nil
}

// pageRequest reads page, size, sortBy, direction and search from the query.
// Unparseable numbers fall back to the defaults applied by the use cases.
func pageRequest(c *gin.Context) entity.PageRequest {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return entity.PageRequest{
		Page:      page,
		Size:      size,
		SortBy:    c.Query("sortBy"),
		Direction: entity.SortDirection(c.Query("direction")),
		Search:    c.Query("search"),
	}
}

func currentIdentity(c *gin.Context) (*entity.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}
	return identity, nil
}

// ensureOwned fails with ErrAccessDenied unless a non-admin caller owns every card.
// Missing cards are left for the use case to report.
func ensureOwned(ctx context.Context, cards usecase.CardUseCase, identity *entity.Identity, cardIDs ...uint64) error {
	if identity.IsAdmin() {
		return nil
	}
	for _, id := range cardIDs {
		owned, err := cards.IsOwnedBy(ctx, id, identity.UserID)
		if errors.Is(err, errs.ErrCardNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if !owned {
			return errs.ErrAccessDenied
		}
	}
	return nil
}

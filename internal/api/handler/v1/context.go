package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/response"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/middleware"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/service"
)

// getMemberFromContext resolves the member id stored by the JWT
// middleware into the full member record.
func getMemberFromContext(ctx *gin.Context, svc MemberService) (domain.Member, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyMemberID)
	if !exists {
		return domain.Member{}, response.ErrWrongCredentials(errors.New("not authenticated"))
	}

	memberID, ok := value.(uint)
	if !ok {
		return domain.Member{}, response.ErrWrongCredentials(errors.New("invalid authentication context"))
	}

	member, err := svc.GetMember(ctx.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			return domain.Member{}, response.ErrWrongCredentials(errors.New("member no longer exists"))
		}

		return domain.Member{}, response.ErrInternalServerError(fmt.Errorf("getMemberFromContext -> svc.GetMember -> %w", err))
	}

	return member, nil
}

// MemberService is the slice of the member service the handlers need to
// resolve and update authenticated members.
type MemberService interface {
	GetMember(ctx context.Context, id uint) (domain.Member, error)
	GetAllMembers(ctx context.Context) ([]domain.Member, error)
	UpdateProfile(ctx context.Context, id uint, firstName, lastName string, friends []uint) (domain.Member, error)
}

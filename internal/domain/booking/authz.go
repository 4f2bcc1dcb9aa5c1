package booking

import (
	"github.com/motorcare/vehicle-service-api/internal/auth"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

// The authorization gate. Every function switches exhaustively over
// the closed Role type so that a new role cannot silently fall through
// a string comparison.

// CanCreate restricts booking creation to plain users.
func CanCreate(ident auth.Identity) error {
	switch ident.Role {
	case auth.RoleUser:
		return nil
	case auth.RoleMechanic, auth.RoleAdmin:
		return httperr.ErrForbidden("only customers can create bookings")
	default:
		return httperr.ErrForbidden("unknown role")
	}
}

// CanView permits admins, the owning user, and the assigned mechanic.
func CanView(ident auth.Identity, b *models.Booking) error {
	switch ident.Role {
	case auth.RoleAdmin:
		return nil
	case auth.RoleUser:
		if b.UserID == ident.UserID {
			return nil
		}
	case auth.RoleMechanic:
		if b.MechanicID != nil && *b.MechanicID == ident.UserID {
			return nil
		}
	}
	return httperr.ErrForbidden("not allowed to view this booking")
}

// CanTransition decides whether the caller may move a booking to the
// target status. Users may only cancel their own bookings; mechanics
// and admins may write any enumerated status.
func CanTransition(ident auth.Identity, b *models.Booking, target Status) error {
	switch ident.Role {
	case auth.RoleMechanic, auth.RoleAdmin:
		return nil
	case auth.RoleUser:
		if b.UserID != ident.UserID {
			return httperr.ErrForbidden("not the booking owner")
		}
		if target != StatusCancelled {
			return httperr.ErrForbidden("customers may only cancel their bookings")
		}
		return nil
	default:
		return httperr.ErrForbidden("unknown role")
	}
}

// ListScope narrows a listing to what the caller may see. Admins see
// everything, users their own bookings, mechanics their assignments.
type ListScope struct {
	UserID     *uint
	MechanicID *uint
}

func ScopeFor(ident auth.Identity) ListScope {
	switch ident.Role {
	case auth.RoleAdmin:
		return ListScope{}
	case auth.RoleMechanic:
		id := ident.UserID
		return ListScope{MechanicID: &id}
	default:
		id := ident.UserID
		return ListScope{UserID: &id}
	}
}

package item

import "trade-custody/internal/model"

// Transition returns the status an item moves to when action is applied to an
// item currently at current. Combinations without a move leave current as is.
//
//	pending           delivered -> at_org, at_org -> pending
//	delivered         pending   -> at_org
//	delivered_to_user at_org    -> delivered
func Transition(current Status, action Action) Status {
	switch action {
	case ActionPending:
		switch current {
		case StatusDelivered:
			return StatusAtOrg
		case StatusAtOrg:
			return StatusPending
		}
	case ActionDelivered:
		if current == StatusPending {
			return StatusAtOrg
		}
	case ActionDeliveredToUser:
		if current == StatusAtOrg {
			return StatusDelivered
		}
	}
	return current
}

// Authorized reports whether role may request action.
// Reverting (pending) is ADMIN only; forward moves are open to staff.
func Authorized(action Action, role model.Role) bool {
	if action == ActionPending {
		return role == model.RoleAdmin
	}
	return role.IsStaff()
}

package auth

import "github.com/schoolmed/console/core"

// Roles issued by the backend. The console mirrors them for client-side
// guards only; the backend remains the authority on every write.
const (
	RoleNurse     = "NURSE"
	RoleParent    = "PARENT"
	RolePrincipal = "PRINCIPAL"
	RoleAdmin     = "ADMIN"
)

var AllRoles = []string{RoleNurse, RoleParent, RolePrincipal, RoleAdmin}

// Op names a guarded write operation.
type Op string

const (
	OpStudentWrite      Op = "manage students"
	OpHealthInfoWrite   Op = "manage health records"
	OpIncidentWrite     Op = "manage health incidents"
	OpInventoryWrite    Op = "manage inventory"
	OpScheduleWrite     Op = "manage medication schedules"
	OpNotificationWrite Op = "manage notifications"
)

var opRoles = map[Op][]string{
	OpStudentWrite:      {RoleNurse, RoleAdmin},
	OpHealthInfoWrite:   {RoleNurse, RoleAdmin},
	OpIncidentWrite:     {RoleNurse, RoleAdmin},
	OpInventoryWrite:    {RoleNurse, RolePrincipal, RoleAdmin},
	OpScheduleWrite:     {RoleNurse, RoleAdmin},
	OpNotificationWrite: {RoleNurse, RolePrincipal, RoleAdmin},
}

// Allowed reports whether role is in op's allow-list.
func Allowed(role string, op Op) bool {
	for _, r := range opRoles[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Require guards op against the session's stored role, without any
// network call. A UX convenience only -- the backend re-checks.
func Require(sess Session, op Op) error {
	if !Allowed(sess.Role, op) {
		return &core.PermissionError{Role: sess.Role, Op: string(op)}
	}
	return nil
}

package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Route-level RBAC. The policy set is fixed at startup: subjects are the two
// effective roles, objects are API resources, actions mirror the route table.

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{RoleUser, "leave", "create"},
	{RoleUser, "leave", "read"},
	{RoleUser, "leave", "update"},
	{RoleUser, "leave", "delete"},
	{RoleUser, "statistics", "read"},
	{RoleUser, "calendar", "read"},
	{RoleUser, "leave_type", "read"},
	{RoleUser, "holiday", "read"},
	{RoleUser, "employee", "read_self"},
	{RoleUser, "notification", "read"},

	{RoleAdmin, "leave", "approve"},
	{RoleAdmin, "user", "manage"},
	{RoleAdmin, "leave_type", "manage"},
	{RoleAdmin, "holiday", "manage"},
	{RoleAdmin, "employee", "manage"},
}

//go:generate mockgen -source=enforcer.go -destination=mock/enforcer_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	// admin inherits every user permission
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleUser); err != nil {
		return nil, err
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: e}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOrCustomer(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleOrCustomer(RoleAdmin))
	assert.Equal(t, RoleCustomer, RoleOrCustomer(RoleCustomer))
	assert.Equal(t, RoleCustomer, RoleOrCustomer(""))
	assert.Equal(t, RoleCustomer, RoleOrCustomer("admin"))
}

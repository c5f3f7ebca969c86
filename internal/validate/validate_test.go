package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.Nil(t, Username("pepe1"))
	assert.Nil(t, Username("abcdefghij"))
	assert.NotNil(t, Username(""))
	assert.NotNil(t, Username("abcd"))
	assert.NotNil(t, Username("abcdefghijk"))
}

func TestEmail(t *testing.T) {
	assert.Nil(t, Email("user@example.com"))
	assert.Nil(t, Email("a@b.co"))
	assert.NotNil(t, Email(""))
	assert.NotNil(t, Email("no-at-sign"))
	assert.NotNil(t, Email("user@nodot"))
	assert.NotNil(t, Email("with space@example.com"))
}

func TestPassword(t *testing.T) {
	assert.Nil(t, Password("12345678"))
	assert.Nil(t, Password(strings.Repeat("x", 20)))
	assert.NotNil(t, Password("1234567"))
	assert.NotNil(t, Password(strings.Repeat("x", 21)))
}

func TestRoles(t *testing.T) {
	assert.Nil(t, Roles(nil))
	assert.Nil(t, Roles([]string{"USER"}))
	assert.Nil(t, Roles([]string{"USER", "ADMIN"}))
	assert.NotNil(t, Roles([]string{"ROOT"}))
	assert.NotNil(t, Roles([]string{"USER", "root"}))
}

func TestPostTitle(t *testing.T) {
	assert.Nil(t, PostTitle(strings.Repeat("t", 20)))
	assert.Nil(t, PostTitle(strings.Repeat("t", 150)))
	assert.NotNil(t, PostTitle(strings.Repeat("t", 19)))
	assert.NotNil(t, PostTitle(strings.Repeat("t", 151)))
}

func TestPostContent(t *testing.T) {
	assert.Nil(t, PostContent(strings.Repeat("c", 500)))
	assert.Nil(t, PostContent(strings.Repeat("c", 10000)))
	assert.NotNil(t, PostContent(strings.Repeat("c", 499)))
	assert.NotNil(t, PostContent(strings.Repeat("c", 10001)))
}

func TestPostCategories(t *testing.T) {
	assert.Nil(t, PostCategories([]string{"go"}))
	assert.NotNil(t, PostCategories(nil))
	assert.NotNil(t, PostCategories([]string{}))
	assert.NotNil(t, PostCategories([]string{"go", ""}))
}

func TestCredentials(t *testing.T) {
	assert.Nil(t, Credentials("user@example.com", "pass"))
	assert.NotNil(t, Credentials("", "pass"))
	assert.NotNil(t, Credentials("user@example.com", ""))
}

//go:build unit

package mongoconv

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestParseObjectID(t *testing.T) {
	oid := bson.NewObjectID()

	got, err := ParseObjectID(" " + oid.Hex() + " ")
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseObjectID(bad)
		assert.ErrorIs(t, err, ErrInvalidObjectID, "input %q", bad)
	}
}

func TestObjectIDHex(t *testing.T) {
	oid := bson.NewObjectID()
	assert.Equal(t, oid.Hex(), ObjectIDHex(oid))
	assert.Empty(t, ObjectIDHex("65f0c0ffee0000000000abcd"))
	assert.Empty(t, ObjectIDHex(nil))
}

func TestIsNoDocuments(t *testing.T) {
	assert.True(t, IsNoDocuments(mongo.ErrNoDocuments))
	assert.True(t, IsNoDocuments(fmt.Errorf("find: %w", mongo.ErrNoDocuments)))
	assert.False(t, IsNoDocuments(assert.AnError))
}

func TestContainsFold(t *testing.T) {
	r := ContainsFold("a+b (x)")
	assert.Equal(t, "i", r.Options)

	re := regexp.MustCompile("(?i)" + r.Pattern)
	assert.True(t, re.MatchString("xxA+B (X)yy"))
	assert.False(t, re.MatchString("aab x"))
}

package mongoconv

import (
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var ErrInvalidObjectID = errors.New("invalid object id")

func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// ParseObjectID accepts the 24-char hex form produced by ObjectID.Hex.
func ParseObjectID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return bson.NilObjectID, ErrInvalidObjectID
	}
	return id, nil
}

// ObjectIDHex turns an InsertedID back into its hex form. Anything that is
// not an ObjectID yields "".
func ObjectIDHex(v any) string {
	id, ok := v.(bson.ObjectID)
	if !ok {
		return ""
	}
	return id.Hex()
}

// ContainsFold builds a case-insensitive "contains" regex for user text.
// Regex metacharacters in the input are matched literally.
func ContainsFold(text string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

package response

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the identifier field of every stored document.
const IDField = "_id"

// SerializeDocuments returns copies of docs with any ObjectId "_id" replaced
// by its hex string. Other fields and non-ObjectId identifiers are left
// untouched, so applying it twice gives the same result. Input documents are
// not modified.
func SerializeDocuments(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		cp := make(bson.M, len(d))
		for k, v := range d {
			cp[k] = v
		}
		if oid, ok := cp[IDField].(primitive.ObjectID); ok {
			cp[IDField] = oid.Hex()
		}
		out = append(out, cp)
	}
	return out
}

package model

import "fmt"

// Kind identifies a content type. Each kind is stored in exactly one
// collection.
type Kind string

const (
	KindDepartment     Kind = "Department"
	KindFaculty        Kind = "Faculty"
	KindEvent          Kind = "Event"
	KindNotice         Kind = "Notice"
	KindContactMessage Kind = "ContactMessage"
)

// kindCollections is the declared kind → collection table. Collection names
// are the lower-cased kind names and must stay unique.
var kindCollections = map[Kind]string{
	KindDepartment:     "department",
	KindFaculty:        "faculty",
	KindEvent:          "event",
	KindNotice:         "notice",
	KindContactMessage: "contactmessage",
}

// Kinds returns every registered kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindDepartment, KindFaculty, KindEvent, KindNotice, KindContactMessage}
}

// Collection returns the storage collection for k. Unknown kinds are a
// caller bug and panic.
func (k Kind) Collection() string {
	name, ok := kindCollections[k]
	if !ok {
		panic(fmt.Sprintf("model: unknown kind %q", string(k)))
	}
	return name
}

// Known reports whether k is a registered kind.
func (k Kind) Known() bool {
	_, ok := kindCollections[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

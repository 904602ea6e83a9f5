package queue

// Status is the moderation state of a submission. The stored queue_code only
// encodes the first three variants; every other stored value decodes to
// StatusDeclined, which is never written back by this codebase.
type Status int

const (
	StatusAccepted Status = iota
	StatusPendingNew
	StatusPendingUpdate
	StatusDeclined
)

const (
	codeAccepted      = 0
	codePendingNew    = 1
	codePendingUpdate = 2
)

// StatusFromCode maps a stored queue_code to its Status.
func StatusFromCode(code int) Status {
	switch code {
	case codeAccepted:
		return StatusAccepted
	case codePendingNew:
		return StatusPendingNew
	case codePendingUpdate:
		return StatusPendingUpdate
	default:
		return StatusDeclined
	}
}

// Code returns the storage encoding of s. Declined has none.
func (s Status) Code() (int, bool) {
	switch s {
	case StatusAccepted:
		return codeAccepted, true
	case StatusPendingNew:
		return codePendingNew, true
	case StatusPendingUpdate:
		return codePendingUpdate, true
	default:
		return 0, false
	}
}

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusPendingNew:
		return "new"
	case StatusPendingUpdate:
		return "updated"
	default:
		return "declined"
	}
}

// Filter names one of the queue listing predicates. Filters always combine
// by AND with ghost = 0 and any caller equality filters.
type Filter string

const (
	FilterAll      Filter = "all"      // any pending state, new or updated
	FilterAccepted Filter = "accepted" // accepted only
	FilterQueued   Filter = "queued"   // accepted or pending, i.e. not declined
)

// Range returns the inclusive queue_code range the filter selects.
func (f Filter) Range() (lo, hi int, ok bool) {
	switch f {
	case FilterAll:
		return codePendingNew, codePendingUpdate, true
	case FilterAccepted:
		return codeAccepted, codeAccepted, true
	case FilterQueued:
		return codeAccepted, codePendingUpdate, true
	default:
		return 0, 0, false
	}
}

// ParseFilter validates a filter name coming off the wire.
func ParseFilter(s string) (Filter, bool) {
	f := Filter(s)
	if _, _, ok := f.Range(); !ok {
		return "", false
	}
	return f, true
}

// Kind is a content category. Each kind has its own physical submission
// table and a stable numeric type code used by the deletion ledger.
type Kind string

const (
	KindSprites Kind = "sprites"
	KindGames   Kind = "games"
	KindHacks   Kind = "hacks"
	KindReviews Kind = "reviews"
	KindHowtos  Kind = "howtos"
	KindSounds  Kind = "sounds"
	KindMisc    Kind = "misc"
)

var kindCodes = map[Kind]int{
	KindSprites: 1,
	KindGames:   2,
	KindHacks:   3,
	KindReviews: 4,
	KindHowtos:  5,
	KindSounds:  6,
	KindMisc:    7,
}

var codeKinds = func() map[int]Kind {
	m := make(map[int]Kind, len(kindCodes))
	for k, c := range kindCodes {
		m[c] = k
	}
	return m
}()

// Kinds lists every known kind in code order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(codeKinds))
	for c := 1; c <= len(codeKinds); c++ {
		out = append(out, codeKinds[c])
	}
	return out
}

// Code returns the ledger type code for k.
func (k Kind) Code() int {
	return kindCodes[k]
}

// Table returns the physical submission table for k.
func (k Kind) Table() string {
	return string(k)
}

// KindByCode resolves a ledger type code. Unknown codes mark a ledger entry
// as stale.
func KindByCode(code int) (Kind, bool) {
	k, ok := codeKinds[code]
	return k, ok
}

// ParseKind validates a kind name coming off the wire.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := kindCodes[k]
	return k, ok
}

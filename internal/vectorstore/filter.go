package vectorstore

import (
	"github.com/qdrant/go-client/qdrant"
)

// CacheScope identifies who a cached answer is visible to. Exactly one of
// three shapes is valid: a single user, a set of groups, or an organization
// combined with a set of groups. A zero CacheScope matches nothing.
type CacheScope struct {
	kind     scopeKind
	userID   int64
	orgID    int64
	groupIDs []int64
}

type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeUser
	scopeGroups
	scopeOrgGroups
)

// UserScope caches for a single user.
func UserScope(userID int64) CacheScope {
	return CacheScope{kind: scopeUser, userID: userID}
}

// GroupScope caches for members of any of the given groups.
func GroupScope(groupIDs ...int64) CacheScope {
	if len(groupIDs) == 0 {
		return CacheScope{}
	}
	return CacheScope{kind: scopeGroups, groupIDs: groupIDs}
}

// OrgGroupScope caches for members of the given groups within one
// organization.
func OrgGroupScope(orgID int64, groupIDs ...int64) CacheScope {
	if len(groupIDs) == 0 {
		return CacheScope{}
	}
	return CacheScope{kind: scopeOrgGroups, orgID: orgID, groupIDs: groupIDs}
}

// DeriveScope picks the widest scope the caller's identity supports:
// organization plus groups when both are present, then groups, then the
// user alone. A caller with no identifiers gets the empty scope.
func DeriveScope(userID, orgID *int64, groupIDs []int64) CacheScope {
	switch {
	case orgID != nil && len(groupIDs) > 0:
		return OrgGroupScope(*orgID, groupIDs...)
	case len(groupIDs) > 0:
		return GroupScope(groupIDs...)
	case userID != nil:
		return UserScope(*userID)
	default:
		return CacheScope{}
	}
}

// IsNone reports whether the scope carries no identifiers. Lookups against
// it are misses and saves are no-ops.
func (s CacheScope) IsNone() bool {
	return s.kind == scopeNone
}

// filter builds the cache query filter. Condition order is organization,
// then groups, then user, matching the payload layout.
func (s CacheScope) filter() *qdrant.Filter {
	var must []*qdrant.Condition
	switch s.kind {
	case scopeUser:
		must = append(must, qdrant.NewMatchInt("user_id", s.userID))
	case scopeGroups:
		must = append(must, qdrant.NewMatchInts("group_ids", s.groupIDs...))
	case scopeOrgGroups:
		must = append(must,
			qdrant.NewMatchInt("organization_id", s.orgID),
			qdrant.NewMatchInts("group_ids", s.groupIDs...),
		)
	default:
		return nil
	}
	return &qdrant.Filter{Must: must}
}

// payload builds the scope part of a cache entry's payload.
func (s CacheScope) payload() map[string]*qdrant.Value {
	p := map[string]*qdrant.Value{}
	switch s.kind {
	case scopeUser:
		p["user_id"] = qdrant.NewValueInt(s.userID)
	case scopeGroups:
		p["group_ids"] = newValueInts(s.groupIDs)
	case scopeOrgGroups:
		p["organization_id"] = qdrant.NewValueInt(s.orgID)
		p["group_ids"] = newValueInts(s.groupIDs)
	}
	return p
}

// documentFilter builds the docs query filter. Group membership wins over
// ownership; a caller with neither gets no filter and the search is
// short-circuited by the store.
func documentFilter(f TenantFilter) *qdrant.Filter {
	switch {
	case len(f.GroupIDs) > 0:
		return &qdrant.Filter{Must: []*qdrant.Condition{
			qdrant.NewMatchInts("group_id", f.GroupIDs...),
		}}
	case f.UserID != nil:
		return &qdrant.Filter{Must: []*qdrant.Condition{
			qdrant.NewMatchInt("owner_id", *f.UserID),
		}}
	default:
		return nil
	}
}

func newValueInts(ids []int64) *qdrant.Value {
	vals := make([]*qdrant.Value, len(ids))
	for i, id := range ids {
		vals[i] = qdrant.NewValueInt(id)
	}
	return &qdrant.Value{Kind: &qdrant.Value_ListValue{ListValue: &qdrant.ListValue{Values: vals}}}
}

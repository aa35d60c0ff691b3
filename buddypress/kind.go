package buddypress

// Kind is the discriminant tag on an activity record. The backend
// treats it as an open string; the set below is what the app knows how
// to render.
type Kind string

const (
	KindUpdate       Kind = "activity_update"
	KindExpense      Kind = "new_expense"
	KindRoutePoint   Kind = "new_route_point"
	KindConnectivity Kind = "new_connectivity"
	KindStory        Kind = "new_story"
	KindSpotHunt     Kind = "new_spothunt"
	KindCreatedGroup Kind = "created_group"
	KindJoinedGroup  Kind = "joined_group"
)

// KnownKinds returns every kind the app has a renderer for.
func KnownKinds() []Kind {
	return []Kind{
		KindUpdate,
		KindExpense,
		KindRoutePoint,
		KindConnectivity,
		KindStory,
		KindSpotHunt,
		KindCreatedGroup,
		KindJoinedGroup,
	}
}

// FilterAllTypes returns the concrete types the "all" feed filter
// expands to. The server treats an absent type filter as
// component-scoped defaults, so "all" must be expanded by the caller
// before the request is built; group membership events arrive through
// the groups component instead.
func FilterAllTypes() []string {
	return []string{
		string(KindUpdate),
		string(KindExpense),
		string(KindRoutePoint),
		string(KindConnectivity),
		string(KindStory),
		string(KindSpotHunt),
	}
}

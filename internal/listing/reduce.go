package listing

// Action is a view transition. The concrete actions are SetQuery, SetType,
// SetTag, SetSort, LoadMore and Reset.
type Action interface {
	apply(ViewState) ViewState
}

type SetQuery struct{ Query string }

type SetType struct{ Type TypeFilter }

type SetTag struct{ Tag string }

type SetSort struct{ Sort SortOrder }

type LoadMore struct{}

type Reset struct{}

func (a SetQuery) apply(s ViewState) ViewState {
	s.Query = a.Query
	s.Visible = PageSize
	return s
}

func (a SetType) apply(s ViewState) ViewState {
	s.Type = a.Type
	s.Visible = PageSize
	return s
}

func (a SetTag) apply(s ViewState) ViewState {
	s.Tag = a.Tag
	s.Visible = PageSize
	return s
}

func (a SetSort) apply(s ViewState) ViewState {
	s.Sort = a.Sort
	s.Visible = PageSize
	return s
}

func (LoadMore) apply(s ViewState) ViewState {
	s.Visible += PageSize
	return s
}

func (Reset) apply(ViewState) ViewState {
	return DefaultViewState()
}

// Reduce returns the state that results from applying a to s. s itself is
// never modified.
func Reduce(s ViewState, a Action) ViewState {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// ToggleTag selects tag, or clears the tag filter when tag is already the
// active one. This is what clicking a tag chip does.
func ToggleTag(s ViewState, tag string) ViewState {
	if s.Tag == tag {
		return Reduce(s, SetTag{Tag: AllTags})
	}
	return Reduce(s, SetTag{Tag: tag})
}

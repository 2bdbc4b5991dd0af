package schema

// Attribute names of the fixed table
const (
	AttrModelID              = "model_id"
	AttrRelativeModelingTime = "relative_modeling_time"
	AttrModelingTime         = "modeling_time"
	AttrTask                 = "task"

	AttrExpertise = "expertise"

	AttrPercentCrossingEdges       = "percent_crossing_edges"
	AttrPercentOrthogonalSeg       = "percent_orthogonal_seg"
	AttrMBP                        = "mbp"
	AttrNoEndingPoints             = "no_ending_points"
	AttrAlignFragments             = "align_fragments"
	AttrPercentActsAlignedFrags    = "percent_acts_aligned_frags"
	AttrPercentActsNotAlignedFrags = "percent_acts_not_aligned_frags"
	AttrNoExplicitGW               = "no_explicit_gw"
	AttrNoImplicitGW               = "no_implicit_gw"
	AttrNoReusedGW                 = "no_reused_gw"
)

// IdentityAttribute is the string attribute that identifies a sample
const IdentityAttribute = AttrModelID

// DefaultEntries returns the attribute table measured for process models.
// Order is significant: feature slots follow it.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: AttrModelID, Kind: KindIgnoredString},
		{Name: AttrRelativeModelingTime, Kind: KindIgnoredNumeric},
		{Name: AttrModelingTime, Kind: KindIgnoredNumeric},
		{Name: AttrTask, Kind: KindIgnoredString},

		{Name: AttrExpertise, Kind: KindClassLabel},

		{Name: AttrPercentCrossingEdges, Kind: KindNumeric},
		{Name: AttrPercentOrthogonalSeg, Kind: KindNumeric},
		{Name: AttrMBP, Kind: KindNumeric},
		{Name: AttrNoEndingPoints, Kind: KindNumeric},
		{Name: AttrAlignFragments, Kind: KindNumeric},
		{Name: AttrPercentActsAlignedFrags, Kind: KindNumeric},
		{Name: AttrPercentActsNotAlignedFrags, Kind: KindNumeric},
		{Name: AttrNoExplicitGW, Kind: KindNumeric},
		{Name: AttrNoImplicitGW, Kind: KindNumeric},
		{Name: AttrNoReusedGW, Kind: KindNumeric},
	}
}

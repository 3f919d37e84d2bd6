package schema

// Custom string types for type safety.
type (
	// Column names a source-file column.
	Column string

	// Dimension names a categorical slicing dimension.
	Dimension string

	// OutputMode represents the format of the output.
	OutputMode string
)

// Source columns, named after the headers of the original CicloDetalhado
// spreadsheet exports.
const (
	ColStartTime      Column = "DataHoraInicio"
	ColInputType      Column = "Tipo Input"
	ColMass           Column = "Massa"
	ColActivity       Column = "Tipo de atividade"
	ColMaterial       Column = "Material"
	ColMaterialSpec   Column = "Especificacao de material"
	ColLoadingTag     Column = "Tag carga"
	ColLoadingFleet   Column = "Frota carga"
	ColTransportFleet Column = "Frota transporte"
)

// KnownColumns lists every column the loader recognizes. Columns outside
// this set are ignored when reading source files.
var KnownColumns = []Column{
	ColStartTime,
	ColInputType,
	ColMass,
	ColActivity,
	ColMaterial,
	ColMaterialSpec,
	ColLoadingTag,
	ColLoadingFleet,
	ColTransportFleet,
}

// All slicing dimensions supported.
const (
	InputTypeDim      Dimension = "input-type"
	ActivityDim       Dimension = "activity"
	MaterialDim       Dimension = "material"
	MaterialSpecDim   Dimension = "material-spec"
	LoadingTagDim     Dimension = "loading-tag"
	LoadingFleetDim   Dimension = "loading-fleet"
	TransportFleetDim Dimension = "transport-fleet"
)

// DimensionColumns maps each dimension to its source column.
var DimensionColumns = map[Dimension]Column{
	InputTypeDim:      ColInputType,
	ActivityDim:       ColActivity,
	MaterialDim:       ColMaterial,
	MaterialSpecDim:   ColMaterialSpec,
	LoadingTagDim:     ColLoadingTag,
	LoadingFleetDim:   ColLoadingFleet,
	TransportFleetDim: ColTransportFleet,
}

// ProductionTopN fixes how many categories each production view shows
// individually before the remainder collapses into OtherLabel. The numbers
// come from the original dashboard and are part of its chart legends.
var ProductionTopN = map[Dimension]int{
	ActivityDim:       2,
	MaterialDim:       3,
	MaterialSpecDim:   3,
	TransportFleetDim: 3,
	LoadingFleetDim:   3,
}

// OtherLabel is the literal catch-all category used by top-N consolidation.
// Kept in Portuguese to match the legends of the original dashboard.
const OtherLabel = "Outros"

// PlaceholderValue marks an unknown fleet or equipment tag in the source
// exports. Placeholder and blank values are treated as null.
const PlaceholderValue = "-"

// PlaceholderDimensions lists the dimensions whose values may carry
// placeholders that must be filtered out.
var PlaceholderDimensions = map[Dimension]bool{
	LoadingTagDim:     true,
	LoadingFleetDim:   true,
	TransportFleetDim: true,
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDimensions lists all valid slicing dimensions.
var ValidDimensions = map[Dimension]struct{}{
	InputTypeDim:      {},
	ActivityDim:       {},
	MaterialDim:       {},
	MaterialSpecDim:   {},
	LoadingTagDim:     {},
	LoadingFleetDim:   {},
	TransportFleetDim: {},
}

// TempFilePrefix marks editor lock artifacts (Excel temp files) that are
// always excluded from source enumeration.
const TempFilePrefix = "~$"

// SourceExtension is the file extension of eligible source exports.
const SourceExtension = ".csv"

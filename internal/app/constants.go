package app

// Layout constants define the dimensions of the sheet table.
const (
	// IndexColumnWidth holds the 1-based row number.
	IndexColumnWidth = 4

	// ToggleColumnWidth holds the expand marker.
	ToggleColumnWidth = 3

	// FieldColumnWidth is the width of each measurement cell.
	FieldColumnWidth = 12

	// AreaColumnWidth is the width of the computed area cell.
	AreaColumnWidth = 12

	// ColumnGap separates adjacent cells.
	ColumnGap = 1

	// HeaderRows covers the title, subtitle and summary bar above the table.
	HeaderRows = 4

	// FooterRows covers the total line and the status line.
	FooterRows = 2
)

// Placeholder is shown in empty measurement cells.
const Placeholder = "0.00"

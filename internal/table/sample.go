package table

// SampleCSV is the well-log sample offered for download.
const SampleCSV = `Depth,GR,RES,BulkDensity
1000,80,55,2.65
1002,85,50,2.67
1004,88,75,2.68
1006,90,44,2.64
1008,76,120,2.66
1010,81,52,2.63
`

// Sample returns SampleCSV parsed with the default delimiter.
func Sample() *Table {
	t, err := Parse(SampleCSV, DefaultDelimiter)
	if err != nil {
		panic("table: sample data does not parse: " + err.Error())
	}
	return t
}

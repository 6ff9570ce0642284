package gen

import "strconv"

// Station is a weather station and its long-run mean temperature in degrees.
type Station struct {
	Name string
	Mean float64
}

var DefaultStations = []Station{
	{"Abha", 18.0},
	{"Abidjan", 26.0},
	{"Accra", 26.4},
	{"Addis Ababa", 16.0},
	{"Adelaide", 17.3},
	{"Alexandria", 20.0},
	{"Amsterdam", 10.2},
	{"Anchorage", 2.8},
	{"Athens", 19.2},
	{"Bangkok", 28.6},
	{"Barcelona", 18.2},
	{"Beijing", 12.9},
	{"Bergen", 7.7},
	{"Bogotá", 13.3},
	{"Bulawayo", 18.9},
	{"Cairo", 21.4},
	{"Chicago", 9.8},
	{"Copenhagen", 9.1},
	{"Dakar", 24.0},
	{"Dhaka", 25.9},
	{"Dubai", 26.9},
	{"Dublin", 9.8},
	{"Hamburg", 9.7},
	{"Helsinki", 5.9},
	{"Hong Kong", 23.3},
	{"Istanbul", 13.9},
	{"İzmir", 17.9},
	{"Jakarta", 26.7},
	{"Kinshasa", 25.3},
	{"Kraków", 8.3},
	{"Lagos", 26.8},
	{"Lima", 19.5},
	{"London", 11.3},
	{"Los Angeles", 18.6},
	{"Madrid", 15.0},
	{"Mexico City", 17.5},
	{"Moscow", 5.8},
	{"Mumbai", 27.1},
	{"Nairobi", 17.8},
	{"New York City", 12.9},
	{"Oslo", 5.7},
	{"Paris", 12.3},
	{"Reykjavík", 4.3},
	{"Rome", 15.2},
	{"São Paulo", 19.7},
	{"Seoul", 12.5},
	{"Singapore", 27.0},
	{"Stockholm", 6.6},
	{"Sydney", 17.7},
	{"Tokyo", 15.4},
	{"Toronto", 9.4},
	{"Vancouver", 10.4},
	{"Wellington", 12.9},
	{"Yakutsk", -8.8},
	{"Zürich", 9.3},
}

// Stations returns n stations, cycling through DefaultStations and suffixing
// the name once the list is exhausted.
func Stations(n int) []Station {
	out := make([]Station, n)
	for i := range out {
		base := DefaultStations[i%len(DefaultStations)]
		if round := i / len(DefaultStations); round > 0 {
			base.Name = base.Name + "-" + strconv.Itoa(round)
		}
		out[i] = base
	}
	return out
}

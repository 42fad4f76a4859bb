package models

// GeoLevel is a level of the state -> district -> mandal -> village hierarchy.
type GeoLevel int

const (
	LevelState GeoLevel = iota
	LevelDistrict
	LevelMandal
	LevelVillage
)

var geoLevelNames = map[GeoLevel]string{
	LevelState:    "state",
	LevelDistrict: "district",
	LevelMandal:   "mandal",
	LevelVillage:  "village",
}

func (l GeoLevel) String() string {
	if name, ok := geoLevelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseGeoLevel maps "state", "district", "mandal" or "village" to its level.
func ParseGeoLevel(s string) (GeoLevel, bool) {
	for level, name := range geoLevelNames {
		if name == s {
			return level, true
		}
	}
	return 0, false
}

// GeoHierarchy is the static state tree. Order of every slice is display order.
type GeoHierarchy struct {
	States []GeoState `yaml:"states" json:"states"`
}

type GeoState struct {
	Name      string        `yaml:"name" json:"name"`
	Districts []GeoDistrict `yaml:"districts" json:"districts"`
}

type GeoDistrict struct {
	Name    string      `yaml:"name" json:"name"`
	Mandals []GeoMandal `yaml:"mandals" json:"mandals"`
}

type GeoMandal struct {
	Name     string   `yaml:"name" json:"name"`
	Villages []string `yaml:"villages" json:"villages"`
}

// GeoSelection holds one chosen value per level plus the valid options of each dependent level.
// Every options list is exactly the children of the current parent selection.
type GeoSelection struct {
	State     string   `json:"state"`
	District  string   `json:"district"`
	Mandal    string   `json:"mandal"`
	Village   string   `json:"village"`
	Districts []string `json:"districts"`
	Mandals   []string `json:"mandals"`
	Villages  []string `json:"villages"`
}

// EmptyGeoSelection has nothing selected and empty (non-nil) option lists.
func EmptyGeoSelection() GeoSelection {
	return GeoSelection{Districts: []string{}, Mandals: []string{}, Villages: []string{}}
}

// Boundaries are the four sides as written in a document.
type Boundaries struct {
	North string `json:"north"`
	South string `json:"south"`
	East  string `json:"east"`
	West  string `json:"west"`
}

type BoundarySet struct {
	Boundaries Boundaries `json:"boundaries"`
	Dimensions Boundaries `json:"dimensions"`
}

// LocationDetails is the location section payload.
type LocationDetails struct {
	Selection     GeoSelection `json:"selection"`
	SyNos         string       `json:"sy_nos"`
	PlotNo        string       `json:"plot_no"`
	BuildingName  string       `json:"building_name,omitempty"`
	HouseNo       string       `json:"house_no,omitempty"`
	Pincode       string       `json:"pincode"`
	ApartmentName string       `json:"apartment_name,omitempty"`
	FlatNo        string       `json:"flat_no,omitempty"`
	Floor         string       `json:"floor,omitempty"`
	Land          BoundarySet  `json:"land"`
	Apartment     *BoundarySet `json:"apartment,omitempty"`
	Flat          *BoundarySet `json:"flat,omitempty"`
}

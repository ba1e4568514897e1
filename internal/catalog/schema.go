package catalog

// File is the top-level structure of catalog.yaml.
type File struct {
	Spaces []SpaceEntry `yaml:"spaces"`
}

// SpaceEntry contains the raw catalog properties of one study space.
type SpaceEntry struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name,omitempty"`
	Building    string           `yaml:"building"`
	Capacity    int              `yaml:"capacity"`
	Features    []string         `yaml:"features,omitempty"`
	NoiseLevel  string           `yaml:"noise_level,omitempty"`
	Hours       HoursEntry       `yaml:"hours"`
	Coordinates CoordinatesEntry `yaml:"coordinates,omitempty"`
	Schedule    []DayEntry       `yaml:"schedule,omitempty"`
}

// HoursEntry is the daily open/close window in HH:MM form.
type HoursEntry struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// CoordinatesEntry locates the space for map clients.
type CoordinatesEntry struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// DayEntry is the schedule template for a single date.
type DayEntry struct {
	Date  string      `yaml:"date"`
	Slots []SlotEntry `yaml:"slots"`
}

// SlotEntry is one labeled slot with its base availability flag.
type SlotEntry struct {
	Time      string `yaml:"time"`
	Available bool   `yaml:"available"`
}

package battle

import "fmt"

type WeatherKind int

const (
	WEATHER_NONE WeatherKind = iota
	WEATHER_RAIN
	WEATHER_SUN
	WEATHER_SANDSTORM
	WEATHER_HAIL
)

var weatherNames = [...]string{
	WEATHER_NONE:      "none",
	WEATHER_RAIN:      "rain",
	WEATHER_SUN:       "sun",
	WEATHER_SANDSTORM: "sandstorm",
	WEATHER_HAIL:      "hail",
}

func (w WeatherKind) String() string {
	if w < 0 || int(w) >= len(weatherNames) {
		panic(fmt.Sprintf("unknown weather %d", int(w)))
	}
	return weatherNames[w]
}

func WeatherByName(name string) (WeatherKind, bool) {
	for i, n := range weatherNames {
		if n == name {
			return WeatherKind(i), true
		}
	}
	return WEATHER_NONE, false
}

const (
	// Weather summoned by an ability lasts until replaced.
	WEATHER_PERMANENT  = -1
	WEATHER_MOVE_TURNS = 5
	WEATHER_ROCK_TURNS = 8
	TRICK_ROOM_TURNS   = 5
	GRAVITY_TURNS      = 5
)

// Weather is shared by both sides for a whole battle. Kind is exclusive; the other
// counters run independently of it and of each other.
type Weather struct {
	Kind      WeatherKind
	Turns     int
	TrickRoom int
	Gravity   int
	// Uproar counts down while any Pokemon is causing an uproar and keeps everything awake.
	Uproar int
}

// Set replaces the current weather. Setting the weather that is already active fails.
func (w *Weather) Set(kind WeatherKind, turns int) bool {
	if w.Kind == kind {
		return false
	}
	w.Kind = kind
	w.Turns = turns
	return true
}

func (w *Weather) Clear() {
	w.Kind = WEATHER_NONE
	w.Turns = 0
}

// Active is the weather as seen by the two active Pokemon.
func (w *Weather) Active(a, b *Pokemon) WeatherKind {
	if a.Ability.SuppressesWeather() || b.Ability.SuppressesWeather() {
		return WEATHER_NONE
	}
	return w.Kind
}

// Suppressed reports if either active Pokemon cancels the weather.
func (w *Weather) Suppressed(a, b *Pokemon) bool {
	return a.Ability.SuppressesWeather() || b.Ability.SuppressesWeather()
}

// decrement counts every global condition down. Weather set by an ability never expires.
func (w *Weather) decrement() {
	if w.Turns != WEATHER_PERMANENT && decrement(&w.Turns) {
		w.Clear()
	}
	decrement(&w.TrickRoom)
	decrement(&w.Gravity)
}

// decrement moves counter one step toward zero and reports whether it reached zero on this step.
func decrement(counter *int) bool {
	if *counter <= 0 {
		return false
	}
	*counter--
	return *counter == 0
}

package halftone

import "fmt"

// Channel identifies one of the four process inks.
type Channel uint8

// Process inks, in composition order.
const (
	Cyan Channel = iota
	Magenta
	Yellow
	Black
)

// Channels lists the inks in the order their layers are composited.
var Channels = [4]Channel{Cyan, Magenta, Yellow, Black}

// ChannelConfig holds the fixed screen parameters of one ink.
type ChannelConfig struct {
	// Name is the single-letter ink name: "c", "m", "y" or "k".
	Name string

	// AngleOffset is added to the user screen angle, in degrees.
	AngleOffset float64

	// Ink is the dot fill color, alpha included.
	Ink RGBA

	// Floor is the minimum channel value, so even paper-white areas get a
	// faint dot of every ink.
	Floor float64
}

var channelTable = [4]ChannelConfig{
	Cyan:    {Name: "c", AngleOffset: 15, Ink: RGBA8(0, 255, 255, 0.95), Floor: 35},
	Magenta: {Name: "m", AngleOffset: 75, Ink: RGBA8(255, 0, 255, 0.95), Floor: 30},
	Yellow:  {Name: "y", AngleOffset: 0, Ink: RGBA8(255, 255, 0, 0.9), Floor: 40},
	Black:   {Name: "k", AngleOffset: 45, Ink: RGBA8(0, 0, 0, 0.95), Floor: 10},
}

// Config returns the screen parameters of the ink.
// It panics if c is not one of the four defined channels.
func (c Channel) Config() ChannelConfig {
	return channelTable[c]
}

// String returns the single-letter ink name.
func (c Channel) String() string {
	if int(c) < len(channelTable) {
		return channelTable[c].Name
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

// ParseChannel parses a single-letter ink name.
func ParseChannel(s string) (Channel, error) {
	for _, ch := range Channels {
		if channelTable[ch].Name == s {
			return ch, nil
		}
	}
	return 0, fmt.Errorf("halftone: unknown channel %q", s)
}

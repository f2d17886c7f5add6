package component

// Contacts stores the sensor results for the current frame.
type Contacts struct {
	Grounded    bool
	WasGrounded bool
	// Landed is set on the frame the body goes from airborne to grounded.
	Landed       bool
	TouchingWall bool

	VaultHit    bool
	VaultHeight float64
}

var ContactsComponent = NewComponent[Contacts]()

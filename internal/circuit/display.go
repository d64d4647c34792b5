package circuit

const (
	displayKindMask      = 0x07
	displayRotationShift = 3
	displayRotationMask  = 0x18
	displayVariantBit    = 0x20
	displayPendingBit    = 0x40
	displayPlacedBit     = 0x80
)

// EncodeJoint packs a placed cell into one display byte: bit 7 placed,
// bit 6 placed but unresolved, bits 0-2 kind, bits 3-4 rotation, bit 5
// variant. A nil cell encodes as 0.
func EncodeJoint(c *Cell) uint8 {
	if c == nil {
		return 0
	}
	if c.Joint == nil {
		return displayPlacedBit | displayPendingBit
	}
	j := c.Joint
	value := displayPlacedBit | uint8(j.Kind)&displayKindMask
	value |= uint8(j.Rotation<<displayRotationShift) & displayRotationMask
	if j.Variant != 0 {
		value |= displayVariantBit
	}
	return value
}

// DisplayCell is the decoded form of a display byte.
type DisplayCell struct {
	Placed   bool
	Pending  bool
	Kind     JointKind
	Rotation int
	Variant  int
}

// DecodeJoint unpacks a display byte produced by EncodeJoint.
func DecodeJoint(v uint8) DisplayCell {
	d := DisplayCell{
		Placed:  v&displayPlacedBit != 0,
		Pending: v&displayPendingBit != 0,
	}
	if !d.Placed || d.Pending {
		return d
	}
	d.Kind = JointKind(v & displayKindMask)
	d.Rotation = int(v&displayRotationMask) >> displayRotationShift
	if v&displayVariantBit != 0 {
		d.Variant = 1
	}
	return d
}

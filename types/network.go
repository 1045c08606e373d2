package types

const (
	NetworkTypeSol int = iota
	NetworkTypeEVM
	NetworkTypeSUI
	NetworkTypeTON
)

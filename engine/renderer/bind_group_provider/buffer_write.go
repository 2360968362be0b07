package bind_group_provider

// BufferWrite stages one uniform buffer update for the renderer to flush.
type BufferWrite struct {
	// Provider owns the target buffer.
	Provider BindGroupProvider

	// Binding selects the buffer on the provider.
	Binding int

	// Offset is the byte offset within the buffer.
	Offset uint64

	// Data is the bytes to write.
	Data []byte
}

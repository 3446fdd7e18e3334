package envutil

// Option is a function which modifies a Reader, such as supplying a default.
type Option[T any] func(Reader[T]) Reader[T]

// Default provides a default value for the Reader.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

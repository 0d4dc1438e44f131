package glm

type Vec2[T numeric] [2]T

// Vec2Of converts the given width and height into a vector of a
// possibly different numeric type.
func Vec2Of[T, S numeric](x, y S) Vec2[T] {
	return Vec2[T]{T(x), T(y)}
}

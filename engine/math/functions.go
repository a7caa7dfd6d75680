package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief The multiplier to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief The multiplier to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive float32 where 1.0 + epsilon != 1.0. */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

/**
 * Note that these are here in order to prevent having to import the
 * entire <math.h> everywhere.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts v from other and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * Multiplies each component of v by scalar and returns a copy of the result.
 */
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{X: 0.0, Y: 0.0, Z: 0.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z,
	}
}

/**
 * Subtracts v from other and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z,
	}
}

/**
 * Multiplies each component of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar,
	}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * Returns a normalized copy of the supplied vector.
 */
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

/**
 * @brief Returns the dot product between v and other. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	if kabs(v.W-other.W) > tolerance {
		return false
	}
	return true
}

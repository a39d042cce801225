// pkg/hexmap/utils.go
package hexmap

// Вспомогательные функции
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059

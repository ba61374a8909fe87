// Package units provides temperature conversions between the scales used by
// the upstream API and the scales shown in reports. No rounding happens here;
// display precision is a formatting concern.
package units

// ToCelsius converts a temperature in Kelvin to Celsius.
func ToCelsius(kelvin float64) float64 {
	return kelvin - 273.15
}

// ToFahrenheit converts a temperature in Kelvin to Fahrenheit.
func ToFahrenheit(kelvin float64) float64 {
	return (kelvin-273.15)*9/5 + 32
}

// CelsiusToFahrenheit converts a Celsius temperature to Fahrenheit. Upstream
// queries use units=metric, so payload temperatures arrive in Celsius and
// Fahrenheit is derived from them.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// Package convert implements the format and unit converters.
//
// Contents
//
//   - Base64 encode/decode with alphabet and padding options (EncodeBase64,
//     DecodeBase64). Binary payloads are identified by MIME sniffing.
//   - Arbitrary-precision hex arithmetic and bitwise operators (HexCalc) and
//     radix conversion (ConvertBase)
//   - Colour conversion between HEX, RGB and HSL (ParseHexColor, RGB.Hex)
//   - CSS length conversion between px and rem (PxToRem, RemToPx)
//   - Roman numerals bounded to 1–3999 (ToRoman, FromRoman)
//   - Scientific and standard notation (ToScientific, FromScientific)
//   - Physical unit conversion (Units)
//
// Every converter validates its input alphabet or range and returns a
// descriptive error instead of producing partial output.
package convert

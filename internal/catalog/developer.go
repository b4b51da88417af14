package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"calckit/internal/calc/convert"
	"calckit/internal/domain"
)

var alphabetOptions = []domain.Option{
	opt(string(convert.Standard), "Standard (+ /)"),
	opt(string(convert.URLSafe), "URL-safe (- _)"),
}

var hexOpOptions = func() []domain.Option {
	out := make([]domain.Option, 0, len(convert.HexOps))
	for _, op := range convert.HexOps {
		out = append(out, opt(string(op), string(op)))
	}
	return out
}()

func developerCalculators() []domain.Calculator {
	return []domain.Calculator{
		{
			Slug:     "base64-encode",
			Title:    "Base64 Encoder",
			Category: domain.CategoryDeveloper,
			Summary:  "Encode text as Base64 with the standard or URL-safe alphabet.",
			Fields: []domain.Field{
				areaField("text", "Text", "Hello, world!"),
				selectField("alphabet", "Alphabet", string(convert.Standard), alphabetOptions...),
				selectField("padding", "Padding", "yes", opt("yes", "With = padding"), opt("no", "Without padding")),
			},
			Compute: computeBase64Encode,
		},
		{
			Slug:     "base64-decode",
			Title:    "Base64 Decoder",
			Category: domain.CategoryDeveloper,
			Summary:  "Decode Base64 back to text. Binary payloads are identified by type.",
			Fields: []domain.Field{
				areaField("data", "Base64", "SGVsbG8sIHdvcmxkIQ=="),
				selectField("alphabet", "Alphabet", string(convert.Standard), alphabetOptions...),
			},
			Compute: computeBase64Decode,
		},
		{
			Slug:     "hex-calculator",
			Title:    "Hex Calculator",
			Category: domain.CategoryDeveloper,
			Summary:  "Arithmetic and bitwise operations on hexadecimal numbers of any size.",
			Fields: []domain.Field{
				textField("x", "First value (hex)", "FF"),
				selectField("op", "Operation", string(convert.HexAnd), hexOpOptions...),
				textField("y", "Second value (hex)", "0F"),
			},
			Compute: computeHexCalc,
		},
		{
			Slug:     "number-base",
			Title:    "Number Base Converter",
			Category: domain.CategoryDeveloper,
			Summary:  "Convert integers between any bases from 2 to 36.",
			Fields: []domain.Field{
				textField("value", "Number", "255"),
				integerField("from", "From base", "10"),
				integerField("to", "To base", "16"),
			},
			Compute: computeNumberBase,
		},
		{
			Slug:     "color-converter",
			Title:    "Color Converter",
			Category: domain.CategoryDeveloper,
			Summary:  "Convert colours between HEX, RGB and HSL.",
			Fields: []domain.Field{
				help(textField("color", "Colour", "#1E90FF"), "A hex colour (#1E90FF, 1e90ff, #fff) or r, g, b.", "#FF8800"),
			},
			Compute: computeColor,
		},
		{
			Slug:     "px-rem",
			Title:    "PX to REM Converter",
			Category: domain.CategoryDeveloper,
			Summary:  "Convert CSS lengths between pixels and rem.",
			Fields: []domain.Field{
				numberField("value", "Value", "24"),
				selectField("direction", "Convert", "px", opt("px", "px → rem"), opt("rem", "rem → px")),
				numberField("root", "Root font size (px)", "16"),
			},
			Compute: computePxRem,
		},
	}
}

func computeBase64Encode(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	text := f.Raw("text")
	alphabet := f.Choice("alphabet", alphabetOptions)
	padding := f.Choice("padding", []domain.Option{opt("yes", ""), opt("no", "")})
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	out, err := convert.EncodeBase64(text, convert.Alphabet(alphabet), padding == "yes")
	if !f.Check("alphabet", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: out}
	res.Add("Base64", out).
		Add("Input size", humanize.Bytes(uint64(len(text)))).
		Add("Output length", count(len(out))+" characters")
	return res, nil
}

func computeBase64Decode(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	data := f.Text("data")
	alphabet := f.Choice("alphabet", alphabetOptions)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	text, err := convert.DecodeBase64Text(data, convert.Alphabet(alphabet))
	if errors.Is(err, convert.ErrBinaryPayload) {
		raw, _ := convert.DecodeBase64(data, convert.Alphabet(alphabet))
		mime, ext := convert.DetectMIME(raw)
		res := domain.Result{Summary: fmt.Sprintf("Binary data: %s", mime)}
		res.Add("Content type", mime).Add("Size", humanize.Bytes(uint64(len(raw))))
		if ext != "" {
			res.Add("Suggested extension", ext)
		}
		res.Notes = append(res.Notes, "The decoded bytes are not UTF-8 text.")
		return res, nil
	}
	if !f.Check("data", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: text}
	res.Add("Text", text).Add("Size", humanize.Bytes(uint64(len(text))))
	return res, nil
}

func computeHexCalc(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	x, op, y := f.Text("x"), f.Choice("op", hexOpOptions), f.Text("y")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	out, err := convert.HexCalc(x, convert.HexOp(op), y)
	if !f.Blame(err, []blame{
		{convert.ErrDivideByZero, "y"},
		{convert.ErrShiftRange, "y"},
		{convert.ErrUnknownOp, "op"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s %s %s = %s", strings.ToUpper(x), op, strings.ToUpper(y), out.Hex)}
	res.Add("Hexadecimal", out.Hex).Add("Decimal", out.Decimal).Add("Binary", out.Binary)
	return res, nil
}

func computeNumberBase(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	value := f.Text("value")
	from, to := f.Int("from"), f.Int("to")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	out, err := convert.ConvertBase(value, from, to)
	if !f.Blame(err, []blame{{convert.ErrRadix, "from"}}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s₍%d₎ = %s₍%d₎", value, from, out, to)}
	res.Add(fmt.Sprintf("Base %d", to), out)
	for _, base := range []int{2, 8, 10, 16} {
		if base == to {
			continue
		}
		if alt, err := convert.ConvertBase(value, from, base); err == nil {
			res.Add(fmt.Sprintf("Base %d", base), alt)
		}
	}
	return res, nil
}

func computeColor(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	raw := f.Text("color")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	c, err := parseColor(raw)
	if !f.Check("color", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s = %s", c.Hex(), c.CSS())}
	res.Add("HEX", c.Hex()).Add("RGB", c.CSS()).Add("HSL", c.HSL().String())
	return res, nil
}

// parseColor accepts a hex colour or "r, g, b" / "rgb(r, g, b)".
func parseColor(raw string) (convert.RGB, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, ",") {
		return convert.ParseHexColor(s)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(strings.ToLower(s), "rgb("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return convert.RGB{}, fmt.Errorf("want three channels, got %d", len(parts))
	}
	var ch [3]int
	for i, p := range parts {
		if _, err := fmt.Sscan(strings.TrimSpace(p), &ch[i]); err != nil {
			return convert.RGB{}, fmt.Errorf("%q is not a channel value", strings.TrimSpace(p))
		}
	}
	return convert.NewRGB(ch[0], ch[1], ch[2])
}

func computePxRem(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	v := f.Float("value")
	dir := f.Choice("direction", []domain.Option{opt("px", ""), opt("rem", "")})
	root := f.Float("root")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	if dir == "rem" {
		px, err := convert.RemToPx(v, root)
		if !f.Check("root", err) {
			return domain.Result{}, f.Err()
		}
		res := domain.Result{Summary: fmt.Sprintf("%srem = %spx", num(v), num(px))}
		res.Add("Pixels", num(px)+"px")
		return res, nil
	}
	rem, err := convert.PxToRem(v, root)
	if !f.Check("root", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%spx = %srem", num(v), num(rem))}
	res.Add("REM", num(rem)+"rem").Add("EM (same root)", num(rem)+"em")
	return res, nil
}

package curtain

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// easeFamilies maps GSAP-style family names to their in/out/inOut variants.
// power1..power4 follow the usual quad..quint progression.
var easeFamilies = map[string][3]ease.TweenFunc{
	"power1":  {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3":  {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"sine":    {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"back":    {ease.InBack, ease.OutBack, ease.InOutBack},
	"elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	"bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// EaseByName resolves a GSAP-style ease name such as "power4.inOut",
// "elastic.out" or "none" to a gween easing function. A bare family name
// ("sine") means its out variant. Parameter suffixes like "back.out(2)" are
// accepted and ignored.
func EaseByName(name string) (ease.TweenFunc, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '('); i >= 0 {
		n = n[:i]
	}
	switch n {
	case "", "none", "linear":
		return ease.Linear, nil
	}
	family, variant, _ := strings.Cut(n, ".")
	fns, ok := easeFamilies[family]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	switch variant {
	case "in":
		return fns[0], nil
	case "", "out":
		return fns[1], nil
	case "inout":
		return fns[2], nil
	}
	return nil, fmt.Errorf("unknown ease variant %q", name)
}

// MustEase is EaseByName for compile-time constant names. Panics on unknown names.
func MustEase(name string) ease.TweenFunc {
	fn, err := EaseByName(name)
	if err != nil {
		panic("curtain: " + err.Error())
	}
	return fn
}

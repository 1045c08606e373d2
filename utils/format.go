package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const LamportsPerSol = 1_000_000_000

func PrettyFloat(f float64) string {
	for _, unit := range []string{"", "K", "M", "G"} {
		if math.Abs(f) < 1000.0 {
			return fmt.Sprintf("%3.2f%s", f, unit)
		}
		f /= 1000.0
	}
	return fmt.Sprintf("%.2fT", f)
}

func AbbreviateDecimal(v decimal.Decimal) string {
	s := v.StringFixedBank(9)
	ss := strings.Split(s, ".")
	if len(ss) == 1 {
		return s
	}

	fraction := ss[1]
	cnt := 0
	for _, c := range fraction {
		if c == '0' {
			cnt++
		} else {
			break
		}
	}

	const zero rune = '\u2080'
	if cnt >= 9 {
		fraction = fraction[:3]
	} else if cnt > 2 {
		fraction = fmt.Sprintf("0%s%s", string(zero+rune(cnt)), fraction[cnt:lo.Min([]int{9, cnt + 3})])
	} else {
		fraction = fraction[:cnt+3]
	}
	return fmt.Sprintf("%s.%s", ss[0], fraction)
}

// LamportsToSol converts a lamport amount to SOL.
func LamportsToSol(lamports uint64) decimal.Decimal {
	return decimal.NewFromUint64(lamports).Div(decimal.NewFromInt(LamportsPerSol))
}

// TrimSpace strips whitespace and the NUL padding the metadata program
// leaves in fixed-size string fields.
func TrimSpace(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\x00 \t\r\n")
}

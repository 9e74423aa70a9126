package numerology

// Profile is the narrative personality profile for a life-path number.
type Profile struct {
	LifePathNumber   int      `json:"lifePathNumber"`
	Title            string   `json:"title"`
	Personality      string   `json:"generalPersonality"`
	LearningStyle    string   `json:"learningStyle"`
	FocusCapability  string   `json:"focusCapability"`
	Motivation       string   `json:"learningMotivation"`
	MathApproach     string   `json:"mathApproach"`
	Strengths        []string `json:"strengths"`
	Challenges       []string `json:"challenges"`
	EffectiveMethods []string `json:"effectiveMethods"`
	IdealEnvironment []string `json:"idealEnvironment"`
	Conclusion       string   `json:"conclusion"`
}

// DefaultLifePath is the profile served when a date cannot be reduced to a known number.
const DefaultLifePath = 1

const minDateDigits = 6

var masterNumbers = map[int]bool{11: true, 22: true, 33: true}

// IsMaster reports whether n is one of the master numbers 11, 22 or 33.
func IsMaster(n int) bool {
	return masterNumbers[n]
}

// LifePath sums every decimal digit in dob and reduces the sum to a single
// digit, stopping early at a master number. Dates with fewer than six digits
// yield 0.
func LifePath(dob string) int {
	sum, count := 0, 0
	for _, r := range dob {
		if r < '0' || r > '9' {
			continue
		}
		sum += int(r - '0')
		count++
	}
	if count < minDateDigits {
		return 0
	}
	return Reduce(sum)
}

// Reduce repeatedly replaces n by the sum of its digits until it is a single
// digit or a master number.
func Reduce(n int) int {
	for n >= 10 && !IsMaster(n) {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}

// Lookup returns the profile stored for number. ok is false when number is
// not a key of the knowledge base, in which case the default profile is
// returned.
func Lookup(number int) (Profile, bool) {
	if p, ok := knowledgeBase[number]; ok {
		return p.clone(), true
	}
	return knowledgeBase[DefaultLifePath].clone(), false
}

// Analyze derives the personality profile for a student. The name is accepted
// for symmetry with the onboarding form; only the birth date drives the result.
func Analyze(name, dob string) Profile {
	p, _ := Lookup(LifePath(dob))
	return p
}

func (p Profile) clone() Profile {
	p.Strengths = append([]string(nil), p.Strengths...)
	p.Challenges = append([]string(nil), p.Challenges...)
	p.EffectiveMethods = append([]string(nil), p.EffectiveMethods...)
	p.IdealEnvironment = append([]string(nil), p.IdealEnvironment...)
	return p
}

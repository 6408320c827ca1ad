package engine

// Outcome classifies one template against one record.
type Outcome int

const (
	// Rejected templates never appear in the sequence.
	Rejected Outcome = iota
	// Exact templates are yielded during the catalog pass.
	Exact
	// Deferred templates are yielded after every exact match.
	Deferred
)

func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case Deferred:
		return "deferred"
	default:
		return "rejected"
	}
}

// Reason explains a rejection or deferral. The empty Reason means the
// predicate found nothing wrong.
type Reason string

// Rejection reasons.
const (
	ReasonGeneration     Reason = "record originated in another generation"
	ReasonSpecies        Reason = "species not in pre-evolution chain"
	ReasonVersion        Reason = "origin version"
	ReasonTID            Reason = "trainer id"
	ReasonSID            Reason = "secret id"
	ReasonCardSID        Reason = "card id does not match secret id"
	ReasonOTName         Reason = "trainer name"
	ReasonOTGender       Reason = "trainer gender"
	ReasonLanguage       Reason = "language"
	ReasonBall           Reason = "ball"
	ReasonFateful        Reason = "fateful encounter flag"
	ReasonMetLevel       Reason = "met level"
	ReasonLevel          Reason = "level above met level"
	ReasonMetLocation    Reason = "met location"
	ReasonEggLocation    Reason = "egg location"
	ReasonTransferredEgg Reason = "egg cannot leave its generation"
	ReasonForm           Reason = "form"
	ReasonShiny          Reason = "shininess"
	ReasonPID            Reason = "personality value"
	ReasonEC             Reason = "encryption constant"
	ReasonOriginGame     Reason = "origin game"
	ReasonNature         Reason = "nature"
	ReasonGender         Reason = "gender"
	ReasonContest        Reason = "contest stats below card"
	ReasonEventForm      Reason = "form not offered by this event"
	ReasonEventVersion   Reason = "event not offered on this version"
	ReasonRanger         Reason = "record is a Pokémon Ranger Manaphy"
	ReasonRangerKorean   Reason = "Ranger Manaphy never reached Korean games"
	ReasonVariantShiny   Reason = "variant PID event cannot be shiny"
)

// Deferral reasons.
const (
	ReasonEvolved         Reason = "record evolved from the gift species"
	ReasonNotReceivable   Reason = "card not receivable on origin version"
	ReasonUnenforcedIVs   Reason = "distribution did not enforce IVs"
	ReasonClassicRibbon   Reason = "classic ribbon may differ"
	ReasonVariantPIDEvent Reason = "variant PID event"
)

// Verdict is the classification of one template.
type Verdict struct {
	Outcome Outcome `json:"outcome"`
	Reason  Reason  `json:"reason,omitempty"`
}

func reject(r Reason) Verdict {
	return Verdict{Outcome: Rejected, Reason: r}
}

func deferTo(r Reason) Verdict {
	return Verdict{Outcome: Deferred, Reason: r}
}

// bySpecies is the default partition: a template for the record's current
// species is exact, anything it evolved from is deferred.
func bySpecies(recSpecies, giftSpecies int) Verdict {
	if recSpecies == giftSpecies {
		return Verdict{Outcome: Exact}
	}
	return deferTo(ReasonEvolved)
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

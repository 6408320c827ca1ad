package pkm

// Species whose alternate form can change after the creature is obtained.
var formChangeable = map[int]bool{
	386: true, // Deoxys
	412: true, // Burmy
	479: true, // Rotom
	487: true, // Giratina
	492: true, // Shaymin
	493: true, // Arceus
	641: true, // Tornadus
	642: true, // Thundurus
	645: true, // Landorus
	646: true, // Kyurem
	647: true, // Keldeo
	648: true, // Meloetta
	649: true, // Genesect
	676: true, // Furfrou
	720: true, // Hoopa
	741: true, // Oricorio
	773: true, // Silvally
	800: true, // Necrozma
}

// CanChangeForm reports whether a record currently holding the given
// species may legitimately show a form other than the one it was obtained
// with.
func CanChangeForm(rec *Record, species int) bool {
	// Deoxys forms are locked to the cartridge until the record leaves
	// generation 3.
	if species == 386 {
		return rec.Format() >= 4
	}
	return formChangeable[species]
}

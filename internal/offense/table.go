package offense

// Key identifies a block of the criminal code by statute title and chapter.
type Key struct {
	Title   int
	Chapter int
}

// DefaultTable is the static mapping from (title, chapter) to offense
// category. It is versioned domain data, consumed read-only; it is not
// computed.
func DefaultTable() map[Key]string {
	return map[Key]string{
		// Unknown statute sentinel.
		{0, 0}: "unknown statute",

		// Title 18: crimes code.
		{18, 9}:  "inchoate crimes",
		{18, 21}: "offenses against the flag",
		{18, 25}: "criminal homicide",
		{18, 26}: "crimes against unborn child",
		{18, 27}: "assault",
		{18, 28}: "antihazing",
		{18, 29}: "kidnapping",
		{18, 30}: "human trafficking",
		{18, 31}: "sexual offenses",
		{18, 32}: "abortion",
		{18, 33}: "arson, criminal mischief, and other property destruction",
		{18, 35}: "burglary and other criminal intrusion",
		{18, 37}: "robbery",
		{18, 39}: "theft and related offenses",
		{18, 41}: "forgery and fraudulent practices",
		{18, 43}: "offenses against the family",
		{18, 47}: "bribery and corrupt influence",
		{18, 49}: "falsification and intimidation",
		{18, 51}: "obstructing governmental operations",
		{18, 53}: "abuse of office",
		{18, 55}: "riot, disorderly conduct and related offenses",
		{18, 57}: "wiretapping and electronic surveillance",
		{18, 59}: "public indecency",
		{18, 61}: "firearms and other dangerous articles",
		{18, 63}: "minors",
		{18, 65}: "nuisances",
		{18, 67}: "proprietary and official rights",
		{18, 69}: "public utilities",
		{18, 71}: "sports and amusemenets",
		{18, 73}: "trade and commerce",
		{18, 75}: "other offenses",
		{18, 76}: "computer offense",
		{18, 77}: "vehicle chop shop and illegally obtained and altered property",

		// Title 23: domestic relations.
		{23, 61}: "domestic relations and abuse",

		// Title 35: health and safety.
		{35, 780}: "drug and substance",

		// Title 42: judiciary and judicial procedure.
		{42, 91}: "arrest prior to requisition",

		// Title 75: vehicle code.
		{75, 1}:  "general traffic offense",
		{75, 2}:  "serious traffic offense",
		{75, 3}:  "accidents report",
		{75, 38}: "driving after imbibing alcohol or utilizing drugs",
		{75, 43}: "vehicles: lighting equipment",
		{75, 45}: "vehicles: other required equipment",
	}
}

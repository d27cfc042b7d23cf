package codec

import (
	"errors"
	"strconv"
	"strings"

	"github.com/redexp/pedigree/layout"
	. "github.com/redexp/pedigree/state"
	"github.com/redexp/pedigree/utils"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pedigree.codec")

var (
	ErrNoHeader = errors.New("missing header row")
	ErrNoRows   = errors.New("no data rows")
)

type Column string

const (
	ColId             Column = "ID"
	ColName           Column = "Name"
	ColSex            Column = "Sex"
	ColAgeAtDiagnosis Column = "Age at Diagnosis"
	ColCancers        Column = "Cancers"
	ColGenetics       Column = "Genetics"
	ColIsDead         Column = "Is Deceased"
	ColRelationship   Column = "Relationship"
	ColParentId       Column = "Parent ID"
	ColSpouseId       Column = "Spouse ID"
	ColMarriageType   Column = "Marriage Type"
	ColX              Column = "X Position"
	ColY              Column = "Y Position"
)

var Columns = []Column{
	ColId,
	ColName,
	ColSex,
	ColAgeAtDiagnosis,
	ColCancers,
	ColGenetics,
	ColIsDead,
	ColRelationship,
	ColParentId,
	ColSpouseId,
	ColMarriageType,
	ColX,
	ColY,
}

func Header() []string {
	list := make([]string, len(Columns))

	for i, col := range Columns {
		list[i] = string(col)
	}

	return list
}

// Rows returns the header followed by one row per member. Ids are renumbered from 1.
func Rows(store *Store) [][]string {
	ids := make(map[string]string, store.Len())

	for i, m := range store.Members {
		ids[m.Id] = strconv.Itoa(i + 1)
	}

	rows := make([][]string, 0, store.Len()+1)
	rows = append(rows, Header())

	for _, m := range store.Members {
		rows = append(rows, []string{
			ids[m.Id],
			m.Name,
			string(m.Sex),
			m.AgeAtDiagnosis,
			m.Cancers,
			m.Genetics,
			strconv.FormatBool(m.IsDead),
			string(m.Relationship),
			ids[m.ParentId],
			ids[m.SpouseId],
			string(m.MarriageType),
			formatCoord(m.X),
			formatCoord(m.Y),
		})
	}

	return rows
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}

type record struct {
	oldId    string
	parentId string
	spouseId string
	member   *Member
}

// FromRows builds a new store from a header row plus data rows.
// Nothing is shared with any existing store, so a failed import changes nothing.
func FromRows(rows [][]string, newId utils.IdGenerator) (store *Store, err error) {
	rows = dropBlank(rows)

	if len(rows) == 0 {
		err = ErrNoHeader
		return
	}

	index := headerIndex(rows[0])

	if len(index) == 0 {
		err = ErrNoHeader
		return
	}

	if len(rows) == 1 {
		err = ErrNoRows
		return
	}

	store = NewStore(newId)
	records := make([]record, 0, len(rows)-1)
	ids := make(map[string]string)

	for _, row := range rows[1:] {
		get := func(col Column) string {
			i, ok := index[col]

			if !ok || i >= len(row) {
				return ""
			}

			return strings.TrimSpace(row[i])
		}

		m := &Member{
			Id:             store.NewId(),
			Name:           get(ColName),
			Sex:            parseSex(get(ColSex)),
			AgeAtDiagnosis: get(ColAgeAtDiagnosis),
			Cancers:        get(ColCancers),
			Genetics:       get(ColGenetics),
			IsDead:         strings.EqualFold(get(ColIsDead), "true"),
			Relationship:   parseRelationship(get(ColRelationship)),
			MarriageType:   parseMarriageType(get(ColMarriageType)),
			X:              parseCoord(get(ColX)),
			Y:              parseCoord(get(ColY)),
		}

		if m.HasPos() {
			m.PositionLocked = true
		} else {
			m.ClearPos()
		}

		rec := record{
			oldId:    get(ColId),
			parentId: get(ColParentId),
			spouseId: get(ColSpouseId),
			member:   m,
		}

		if _, exist := ids[rec.oldId]; rec.oldId != "" && !exist {
			ids[rec.oldId] = m.Id
		}

		records = append(records, rec)
		store.Append(m)
	}

	for _, rec := range records {
		rec.member.ParentId = ids[rec.parentId]
		rec.member.SpouseId = ids[rec.spouseId]

		if rec.parentId != "" && rec.member.ParentId == "" {
			log.Warningf("row %s: unknown parent id %s", rec.oldId, rec.parentId)
		}

		if rec.spouseId != "" && rec.member.SpouseId == "" {
			log.Warningf("row %s: unknown spouse id %s", rec.oldId, rec.spouseId)
		}
	}

	repairSpouses(store)
	pickProband(store)

	n := layout.Place(store)

	log.Infof("imported %d members, %d placed by layout", store.Len(), n)

	return
}

func dropBlank(rows [][]string) [][]string {
	list := make([][]string, 0, len(rows))

	for _, row := range rows {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}

		list = append(list, row)
	}

	return list
}

func headerIndex(header []string) map[Column]int {
	names := make(map[string]Column, len(Columns))

	for _, col := range Columns {
		names[strings.ToLower(string(col))] = col
	}

	index := make(map[Column]int)

	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		col, ok := names[name]

		if !ok {
			continue
		}

		if _, exist := index[col]; !exist {
			index[col] = i
		}
	}

	return index
}

func parseSex(src string) Sex {
	if strings.EqualFold(src, string(SexMale)) {
		return SexMale
	}

	return SexFemale
}

func parseRelationship(src string) Relationship {
	rel := Relationship(strings.ToLower(src))

	if rel.Valid() {
		return rel
	}

	return ""
}

func parseMarriageType(src string) MarriageType {
	t := MarriageType(strings.ToLower(src))

	if t.Valid() {
		return t
	}

	return ""
}

func parseCoord(src string) *float64 {
	if src == "" {
		return nil
	}

	v, err := strconv.ParseFloat(src, 64)

	if err != nil {
		return nil
	}

	return utils.P(v)
}

// repairSpouses completes one sided spouse links when the other side is empty.
func repairSpouses(store *Store) {
	for _, m := range store.Members {
		spouse := store.Get(m.SpouseId)

		if spouse != nil && spouse.SpouseId == "" && spouse.Id != m.Id {
			spouse.SpouseId = m.Id
		}
	}
}

// pickProband keeps the first flagged proband, or promotes the first row.
// Extra probands become children.
func pickProband(store *Store) {
	var proband *Member

	for _, m := range store.Members {
		if !m.IsProband() {
			continue
		}

		if proband == nil {
			proband = m
			continue
		}

		log.Warningf("extra proband %s demoted to %s", m.Id, RelChild)
		m.Relationship = RelChild
	}

	if proband == nil && store.Len() > 0 {
		store.Members[0].Relationship = RelProband
	}
}

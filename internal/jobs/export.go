package jobs

import (
	"errors"

	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/challonge"
	"github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/dao"
	"github.com/sirupsen/logrus"
)

// RunExport fetches all tournaments of a community for the given year and
// persists them through the DAO. A fetch error aborts before anything is
// written, so no partial export is produced. Returns the number of exported
// records.
func RunExport(client challonge.ChallongeClient, dao dao.TournamentDAO, communityId string, year int) (int, error) {
	logrus.Infof("Fetching tournaments for community %s in year %d", communityId, year)

	tournaments, err := client.GetTournaments(communityId, year)
	if err != nil {
		return 0, errors.New("get tournaments: " + err.Error())
	}
	logrus.Infof("Got %d tournaments in year %d", len(tournaments), year)

	if err := dao.SaveTournaments(tournaments); err != nil {
		return 0, errors.New("save tournaments: " + err.Error())
	}

	logrus.Info("Export completed successfully.")
	return len(tournaments), nil
}

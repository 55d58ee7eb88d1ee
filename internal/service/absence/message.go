package absence

import (
	"fmt"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
)

const decisionTitle = "Aprobacion Solicitud"

// decisionMessage renders the notification body sent to the requester.
func decisionMessage(action absence.Action, req absence.AbsenceRequest) string {
	name := employee.FullName(req.Employee.FirstName, req.Employee.LastName, "Usuario")

	if action == absence.ActionApprove {
		return fmt.Sprintf("Estimado/a %s:\n\n"+
			"Su solicitud de ausencia del %s al %s ha sido aprobada y quedó registrada en el sistema.\n\n"+
			"Puede revisar las fechas, el tipo de ausencia y demás detalles en la sección de ausencias.\n\n"+
			"Saludos cordiales.",
			name, req.StartDate.Format("02/01/2006"), req.EffectiveEndDate().Format("02/01/2006"))
	}

	return fmt.Sprintf("Estimado/a %s:\n\n"+
		"Su solicitud de ausencia del %s al %s ha sido rechazada tras la revisión correspondiente.\n\n"+
		"Puede consultar el detalle de la decisión en la sección de ausencias.\n\n"+
		"Saludos cordiales.",
		name, req.StartDate.Format("02/01/2006"), req.EffectiveEndDate().Format("02/01/2006"))
}

func requestActionURL(id int64) string {
	return fmt.Sprintf("/absences/requests/%d", id)
}

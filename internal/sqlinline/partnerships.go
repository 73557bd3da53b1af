package sqlinline

const QInsertPartnership = `--sql bf6f52d0-4e8b-4669-b976-9b75a2ab8cee
insert into partnerships (name, email, organization, message, createdAt, status)
values (?, ?, ?, ?, ?, ?)
returning id;
`

const QListPartnerships = `--sql 1f2aca3d-e2a8-4e40-9541-af2cc068137c
select id, name, email, organization, message, createdAt, status
from partnerships
order by id;
`

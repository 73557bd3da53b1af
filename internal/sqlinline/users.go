package sqlinline

const QInsertUser = `--sql 4dcf9cdd-4ff1-4a77-918a-f79274a23868
insert into users (firstName, lastName, email, phone, location, education, password, createdAt)
values (?, ?, ?, ?, ?, ?, ?, ?)
returning id;
`

const QSelectUserByEmail = `--sql 3b273bc7-7417-4f61-956d-0c76f0c873e9
select id, firstName, lastName, email, phone, location, education, password, createdAt
from users
where email = ?
limit 1;
`

const QListUsers = `--sql 7c0e4b62-042b-4953-8786-eebbaa4dbd8a
select id, firstName, lastName, email, phone, location, education, password, createdAt
from users
order by id;
`
